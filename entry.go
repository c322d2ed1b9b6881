package dictcc

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/kedeggel/dictcc/phrase"
)

// Gender is a grammatical gender/number tag from a `{...}` fragment.
type Gender int

const (
	Feminine Gender = iota + 1
	Masculine
	Neuter
	Plural
	Singular
)

var genderToDescription = map[Gender]string{
	Feminine:  "Feminine",
	Masculine: "Masculine",
	Neuter:    "Neuter",
	Plural:    "Plural",
	Singular:  "Singular",
}

func (g Gender) String() string {
	return genderToDescription[g]
}

// ParseGender performs the fault-tolerant conversion of a gender tag; a
// trailing '.' is stripped first.
func ParseGender(s string) (Gender, error) {
	switch strings.TrimRight(s, ".") {
	case "f":
		return Feminine, nil
	case "m":
		return Masculine, nil
	case "n":
		return Neuter, nil
	case "pl":
		return Plural, nil
	case "sg":
		return Singular, nil
	}
	return 0, UnknownGenderError{Name: s}
}

// WordClass is a grammatical category tag of an entry.
type WordClass int

const (
	Adjective WordClass = iota + 1
	Adverb
	Past
	Verb
	PresentParticiple
	Preposition
	Conjunction
	Pronoun
	Prefix
	Suffix
	Noun
)

var wordClassToDescription = map[WordClass]string{
	Adjective:         "Adjective",
	Adverb:            "Adverb",
	Past:              "Past",
	Verb:              "Verb",
	PresentParticiple: "PresentParticiple",
	Preposition:       "Preposition",
	Conjunction:       "Conjunction",
	Pronoun:           "Pronoun",
	Prefix:            "Prefix",
	Suffix:            "Suffix",
	Noun:              "Noun",
}

func (wc WordClass) String() string {
	return wordClassToDescription[wc]
}

// ParseWordClass performs the fault-tolerant conversion of a dict.cc word
// class token; a trailing '.' is stripped first. Unknown tokens error and
// are skipped by the projection.
func ParseWordClass(s string) (WordClass, error) {
	switch strings.TrimRight(s, ".") {
	case "adj":
		return Adjective, nil
	case "adv":
		return Adverb, nil
	case "past-p":
		return Past, nil
	case "verb":
		return Verb, nil
	case "pres-p":
		return PresentParticiple, nil
	case "prep":
		return Preposition, nil
	case "conj":
		return Conjunction, nil
	case "pron":
		return Pronoun, nil
	case "prefix":
		return Prefix, nil
	case "suffix":
		return Suffix, nil
	case "noun":
		return Noun, nil
	}
	return 0, UnknownWordClassError{WordClass: s}
}

// parseWordClasses tokenises the word-class column. Unknown tokens are
// dropped with a notice, never fatal; duplicates are retained.
func parseWordClasses(field string) []WordClass {
	var classes []WordClass
	for _, token := range strings.Fields(field) {
		class, err := ParseWordClass(token)
		if err != nil {
			logrus.Infof("skipping word class: %v", err)
			continue
		}
		classes = append(classes, class)
	}
	return classes
}

// DictWord is one side of an entry: the parsed phrase plus the projections
// the query engine and the grouper work on.
type DictWord struct {
	// Nodes is the parsed phrase, kept for rendering and accessors.
	Nodes phrase.Nodes

	// IndexedWord is the lowercased single-space join of Word and Round
	// node texts. It is the sole searchable/sortable key of the side.
	IndexedWord string

	// WordCount is the number of Word plus Round nodes.
	WordCount int
}

func newDictWord(nodes phrase.Nodes) DictWord {
	return DictWord{
		Nodes:       nodes,
		IndexedWord: nodes.IndexedWord(),
		WordCount:   nodes.CountWords(),
	}
}

// Plain is the word without its optional parts.
func (w DictWord) Plain() string {
	return w.Nodes.Plain()
}

// WithOptionalParts is the word keeping `(...)` fragments and their
// brackets.
func (w DictWord) WithOptionalParts() string {
	return w.Nodes.WithOptionalParts()
}

// Acronyms flattens the contents of all `<...>` fragments.
func (w DictWord) Acronyms() []string {
	return w.Nodes.Acronyms()
}

// Comments returns the texts of all `[...]` fragments.
func (w DictWord) Comments() []string {
	return w.Nodes.Comments()
}

// Genders returns all parsed `{...}` tags in source order. Unknown tags are
// skipped with a notice.
func (w DictWord) Genders() []Gender {
	var genders []Gender
	for _, tag := range w.Nodes.GenderTags() {
		gender, err := ParseGender(tag)
		if err != nil {
			logrus.Infof("skipping gender tag: %v", err)
			continue
		}
		genders = append(genders, gender)
	}
	return genders
}

// Entry is one translation pair with its word classes.
type Entry struct {
	Left        DictWord
	Right       DictWord
	WordClasses []WordClass
}

func (e Entry) maxWordCount() int {
	return max(e.Left.WordCount, e.Right.WordCount)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s\t<->\t%s\t%v", e.Left.Plain(), e.Right.Plain(), e.WordClasses)
}

// LongString is a one-line rendering of both sides with their annotations,
// used by the dump command.
func (e Entry) LongString() string {
	classes := lo.Map(e.WordClasses, func(wc WordClass, _ int) string { return wc.String() })
	return fmt.Sprintf("%s\t<->\t%s\t[%s]",
		longSide(e.Left), longSide(e.Right), strings.Join(classes, ", "))
}

func longSide(w DictWord) string {
	parts := []string{w.WithOptionalParts()}
	if acronyms := w.Acronyms(); len(acronyms) > 0 {
		parts = append(parts, "<"+strings.Join(acronyms, " ")+">")
	}
	for _, gender := range w.Genders() {
		parts = append(parts, "{"+gender.String()+"}")
	}
	for _, comment := range w.Comments() {
		parts = append(parts, "["+comment+"]")
	}
	return strings.Join(parts, " ")
}
