package dictcc

import (
	"fmt"
	"regexp"
	"strings"
)

// Language is a two-letter dict.cc language code. Codes are canonically
// uppercase; codes outside the known roster are carried as-is and display
// as "Other Language: XX".
type Language struct {
	code string
}

var languageNames = map[string]string{
	"SQ": "Albanian",
	"BS": "Bosnian",
	"BG": "Bulgarian",
	"HR": "Croatian",
	"CS": "Czech",
	"DA": "Danish",
	"NL": "Dutch",
	"EN": "English",
	"EO": "Esperanto",
	"FI": "Finnish",
	"FR": "French",
	"DE": "German",
	"EL": "Greek",
	"HU": "Hungarian",
	"IS": "Icelandic",
	"IT": "Italian",
	"LA": "Latin",
	"NO": "Norwegian",
	"PL": "Polish",
	"PT": "Portuguese",
	"RO": "Romanian",
	"RU": "Russian",
	"SR": "Serbian",
	"SK": "Slovak",
	"ES": "Spanish",
	"SV": "Swedish",
	"TR": "Turkish",
}

// ParseLanguage converts a two-letter code into a Language. Anything that is
// not exactly two characters fails with InvalidLanguageCodeError.
func ParseLanguage(s string) (Language, error) {
	if len(s) != 2 {
		return Language{}, InvalidLanguageCodeError{Code: s}
	}
	return Language{code: strings.ToUpper(s)}, nil
}

// Code returns the canonical uppercase language code.
func (l Language) Code() string {
	return l.code
}

// String returns the display name, e.g. "German" for DE.
func (l Language) String() string {
	if name, ok := languageNames[l.code]; ok {
		return name
	}
	return fmt.Sprintf("Other Language: %s", l.code)
}

// LanguagePair identifies the two languages of a database file, in column
// order.
type LanguagePair struct {
	Left  Language
	Right Language
}

func (p LanguagePair) String() string {
	return p.Left.code + "-" + p.Right.code
}

// InferQueryDirection maps a source language onto a query direction: the
// left language queries to the right and vice versa. A language matching
// neither side fails with InvalidSourceLanguageError.
func (p LanguagePair) InferQueryDirection(sourceLanguage Language) (QueryDirection, error) {
	switch sourceLanguage {
	case p.Left:
		return ToRight, nil
	case p.Right:
		return ToLeft, nil
	}
	return 0, InvalidSourceLanguageError{SourceLanguage: sourceLanguage, Languages: p}
}

var languagePairRegexp = regexp.MustCompile(`([A-Z]{2})-([A-Z]{2})`)

// languagePairFromHeader extracts the language pair token from the header
// line of a database file. The header may or may not start with '#'.
func languagePairFromHeader(header, path string) (LanguagePair, error) {
	groups := languagePairRegexp.FindStringSubmatch(header)
	if groups == nil {
		return LanguagePair{}, LanguageCodeNotFoundError{Path: path}
	}
	left, err := ParseLanguage(groups[1])
	if err != nil {
		return LanguagePair{}, err
	}
	right, err := ParseLanguage(groups[2])
	if err != nil {
		return LanguagePair{}, err
	}
	return LanguagePair{Left: left, Right: right}, nil
}
