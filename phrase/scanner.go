package phrase

import (
	"strings"
)

// We don't do a lexer/parser split or a token stream; the Scanner is simply
// a cursor in the input string with associated utility methods used directly
// by Parse. All structural characters of the grammar are ASCII, so the
// cursor moves bytewise; word bodies are carried over as substrings and keep
// any multi-byte runes intact.
type Scanner struct {
	input    string
	curIndex int
}

func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

func (s *Scanner) eof() bool {
	return s.curIndex >= len(s.input)
}

// Remaining returns the unconsumed input.
func (s *Scanner) Remaining() string {
	return s.input[s.curIndex:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// wordTerminators are the only characters that end a bare word: the opening
// brackets and the fragment separator. Closing brackets are ordinary word
// characters outside a bracketed form.
const wordTerminators = "([{< \t"

func (s *Scanner) skipSpaces() {
	for !s.eof() && isSpace(s.input[s.curIndex]) {
		s.curIndex++
	}
}

// scanWord consumes a run of characters up to the next opening bracket or
// space. The caller guarantees the cursor is not at EOF or on a space, so
// the result is never empty.
func (s *Scanner) scanWord() string {
	start := s.curIndex
	if i := strings.IndexAny(s.input[s.curIndex:], wordTerminators); i >= 0 {
		s.curIndex += i
	} else {
		s.curIndex = len(s.input)
	}
	return s.input[start:s.curIndex]
}

// scanDelimited assumes the cursor is on the opening character and consumes
// `open body close`. The body must be non-empty and must contain neither the
// opening nor the closing character (brackets do not nest).
func (s *Scanner) scanDelimited(open, close byte) (string, error) {
	openCol := s.curIndex
	s.curIndex++ // over open

	start := s.curIndex
	for !s.eof() {
		switch s.input[s.curIndex] {
		case close:
			body := s.input[start:s.curIndex]
			if body == "" {
				return "", Error{Col: openCol, Message: "empty " + string(open) + string(close) + " bracket"}
			}
			s.curIndex++ // over close
			return body, nil
		case open:
			return "", Error{Col: s.curIndex, Message: "nested " + string(open) + " bracket"}
		default:
			s.curIndex++
		}
	}
	return "", Error{Col: openCol, Message: "unterminated " + string(open) + " bracket"}
}
