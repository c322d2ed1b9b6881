// Package dictcc is an offline bilingual translator operating on
// dictionaries exported from dict.cc.
//
// A dictionary file is tab-separated text: one translation pair per line
// with a left-language phrase, a right-language phrase and a list of word
// class tags. The phrase columns use a compact bracket syntax (see package
// phrase). A Dict ingests such a file eagerly and answers search queries
// whose results can be grouped for aligned tabular display.
package dictcc

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kedeggel/dictcc/phrase"
)

// Dict owns the loaded entries and the language pair of one database file.
// It is immutable after construction.
type Dict struct {
	entries   []Entry
	languages LanguagePair
}

// New reads the database file at path into a Dict. Ragged rows and
// malformed phrases are recovered (dropped respectively degraded to a bare
// word) and reported at info level; I/O failures and a missing language
// header abort construction.
func New(path string) (*Dict, error) {
	logrus.Infof("using database path: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, FileOpenError{Path: path, Cause: err}
	}
	defer func() {
		_ = f.Close()
	}()

	return read(f, path)
}

// read builds the Dict from an already-open stream. Split out of New so
// tests can feed records directly.
func read(r io.Reader, path string) (*Dict, error) {
	reader := newRecordReader(r, path)

	// The first line is the metadata header carrying the XX-YY language
	// pair token; it is consumed here and never treated as data, whether or
	// not it is also marked as a comment.
	header, ok, err := reader.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, FileOpenError{Path: path, Cause: io.ErrUnexpectedEOF}
	}
	languages, err := languagePairFromHeader(header, path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for {
		record, ok, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		left := phrase.ParseWithFallback(decodeEntities(record.left))
		right := phrase.ParseWithFallback(decodeEntities(record.right))
		entries = append(entries, Entry{
			Left:        newDictWord(left),
			Right:       newDictWord(right),
			WordClasses: parseWordClasses(record.wordClasses),
		})
	}

	logrus.Debugf("loaded %d entries (%s)", len(entries), languages)

	return &Dict{entries: entries, languages: languages}, nil
}

// Entries returns a read-only view of all entries in source file order.
func (d *Dict) Entries() []Entry {
	return d.entries
}

// LanguagePair returns the language pair derived from the file header.
func (d *Dict) LanguagePair() LanguagePair {
	return d.languages
}

// LeftLanguage returns the language of the left column.
func (d *Dict) LeftLanguage() Language {
	return d.languages.Left
}

// RightLanguage returns the language of the right column.
func (d *Dict) RightLanguage() Language {
	return d.languages.Right
}

// Query starts building a query for term with the defaults: word matching,
// bidirectional.
func (d *Dict) Query(term string) *Query {
	return &Query{
		dict:      d,
		term:      term,
		queryType: WordQuery,
		direction: Bidirectional,
	}
}
