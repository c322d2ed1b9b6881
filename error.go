package dictcc

import (
	"fmt"
)

// FileOpenError means the database file could not be opened or its header
// line could not be read.
type FileOpenError struct {
	Path  string
	Cause error
}

func (e FileOpenError) Error() string {
	return fmt.Sprintf("could not open dictionary file at %q: %v", e.Path, e.Cause)
}

func (e FileOpenError) Unwrap() error { return e.Cause }

// RecordError is a record-shape failure other than a ragged row (ragged rows
// are dropped silently with a notice); in practice a data line exceeding the
// line buffer.
type RecordError struct {
	Path  string
	Line  int
	Cause error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("could not parse record %s:%d: %v", e.Path, e.Line, e.Cause)
}

func (e RecordError) Unwrap() error { return e.Cause }

// IOError is an unclassified I/O failure while streaming records.
type IOError struct {
	Path  string
	Cause error
}

func (e IOError) Error() string {
	return fmt.Sprintf("i/o error reading %q: %v", e.Path, e.Cause)
}

func (e IOError) Unwrap() error { return e.Cause }

// LanguageCodeNotFoundError means the header line carries no XX-YY language
// pair token.
type LanguageCodeNotFoundError struct {
	Path string
}

func (e LanguageCodeNotFoundError) Error() string {
	return fmt.Sprintf("language code not found in header of %q", e.Path)
}

// InvalidLanguageCodeError is returned for language codes that are not two
// letters long.
type InvalidLanguageCodeError struct {
	Code string
}

func (e InvalidLanguageCodeError) Error() string {
	return fmt.Sprintf("invalid language code: %q", e.Code)
}

// InvalidSourceLanguageError means the requested source language matches
// neither side of the dictionary's language pair.
type InvalidSourceLanguageError struct {
	SourceLanguage Language
	Languages      LanguagePair
}

func (e InvalidSourceLanguageError) Error() string {
	return fmt.Sprintf("invalid source language %s: dictionary languages are %s", e.SourceLanguage, e.Languages)
}

// UnknownQueryTypeError is returned when a textual query type is none of
// w|word, e|exact, r|regex.
type UnknownQueryTypeError struct {
	QueryType string
}

func (e UnknownQueryTypeError) Error() string {
	return fmt.Sprintf("unknown query type: %q", e.QueryType)
}

// RegexError means the pattern compiled for a query was rejected by the
// regexp engine; with the Regex query type this surfaces errors in the
// user-supplied pattern.
type RegexError struct {
	Pattern string
	Cause   error
}

func (e RegexError) Error() string {
	return fmt.Sprintf("could not compile query pattern %q: %v", e.Pattern, e.Cause)
}

func (e RegexError) Unwrap() error { return e.Cause }

// UnknownWordClassError is recovered during projection: the offending token
// is skipped with a notice.
type UnknownWordClassError struct {
	WordClass string
}

func (e UnknownWordClassError) Error() string {
	return fmt.Sprintf("unknown word class: %q", e.WordClass)
}

// UnknownGenderError is recovered during projection: the offending tag is
// skipped with a notice.
type UnknownGenderError struct {
	Name string
}

func (e UnknownGenderError) Error() string {
	return fmt.Sprintf("unknown gender name: %q", e.Name)
}
