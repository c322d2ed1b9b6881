package phrase

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Error is a syntax error at a byte offset of the phrase. Parse errors never
// surface beyond ParseWithFallback; they only show up in logs.
type Error struct {
	Col     int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("col %d: %s", e.Col, e.Message)
}

// Parse parses a phrase into its classified node sequence. The whole input
// must be consumed; anything else is an error. An empty (or all-space) input
// is an error as well, a phrase has at least one fragment.
func Parse(input string) (Nodes, error) {
	s := NewScanner(input)

	var nodes Nodes
	s.skipSpaces()
	for !s.eof() {
		node, err := s.nextNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		s.skipSpaces()
	}
	if len(nodes) == 0 {
		return nil, Error{Col: 0, Message: "empty phrase"}
	}
	return nodes, nil
}

// ParseWithFallback parses like Parse but never fails: a phrase that does
// not parse becomes a single Word node holding the entire input, so every
// entry round-trips into the dictionary however malformed. The degradation
// is reported at info level.
func ParseWithFallback(input string) Nodes {
	nodes, err := Parse(input)
	if err != nil {
		logrus.Infof("using word fallback for %q: %v", input, err)
		return Nodes{{Type: WordNode, Text: input}}
	}
	return nodes
}

// nextNode dispatches on the single character of lookahead the grammar
// needs. The cursor is on a non-space character.
func (s *Scanner) nextNode() (Node, error) {
	switch s.input[s.curIndex] {
	case '<':
		body, err := s.scanDelimited('<', '>')
		if err != nil {
			return Node{}, err
		}
		return Node{Type: AngleNode, Items: strings.Split(body, ", ")}, nil
	case '(':
		body, err := s.scanDelimited('(', ')')
		if err != nil {
			return Node{}, err
		}
		return Node{Type: RoundNode, Text: body}, nil
	case '[':
		body, err := s.scanDelimited('[', ']')
		if err != nil {
			return Node{}, err
		}
		return Node{Type: SquareNode, Text: body}, nil
	case '{':
		body, err := s.scanDelimited('{', '}')
		if err != nil {
			return Node{}, err
		}
		return Node{Type: CurlyNode, Text: body}, nil
	default:
		return Node{Type: WordNode, Text: s.scanWord()}, nil
	}
}
