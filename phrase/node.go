// Package phrase parses the compact bracket syntax used by dict.cc phrase
// columns into an ordered sequence of classified nodes.
//
// The grammar is small: a phrase is a space-separated list of fragments, and
// a fragment is either a bare word or one of four bracketed forms — `(...)`
// optional parts, `[...]` visible comments, `{...}` gender tags and `<a, b>`
// acronym lists. Brackets do not nest.
package phrase

import (
	"fmt"
	"strings"
)

// Node is one classified fragment of a parsed phrase.
type Node struct {
	Type NodeType

	// Text is the bracket body (or the bare text for WordNode). Unused for
	// AngleNode.
	Text string

	// Items holds the ", "-separated body of an AngleNode, in source order.
	Items []string
}

// String renders the node back in its source syntax.
func (n Node) String() string {
	switch n.Type {
	case WordNode:
		return n.Text
	case AngleNode:
		return "<" + strings.Join(n.Items, ", ") + ">"
	case RoundNode:
		return "(" + n.Text + ")"
	case SquareNode:
		return "[" + n.Text + "]"
	case CurlyNode:
		return "{" + n.Text + "}"
	}
	panic(fmt.Sprintf("unhandled node type %d", n.Type))
}

// Nodes is an ordered node sequence making up one phrase side.
type Nodes []Node

// String renders the whole phrase, fragments separated by single spaces.
// For any phrase that parsed cleanly this recovers the input modulo
// whitespace normalisation.
func (ns Nodes) String() string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

// IndexedWord is the lowercased, single-space join of all Word and Round
// node texts in source order. It is the sole search and sort key of a phrase.
func (ns Nodes) IndexedWord() string {
	var parts []string
	for _, n := range ns {
		if n.Type == WordNode || n.Type == RoundNode {
			parts = append(parts, strings.ToLower(n.Text))
		}
	}
	return strings.Join(parts, " ")
}

// CountWords returns the number of Word plus Round nodes.
func (ns Nodes) CountWords() int {
	count := 0
	for _, n := range ns {
		if n.Type == WordNode || n.Type == RoundNode {
			count++
		}
	}
	return count
}

// Plain is the space-join of the Word node texts only, optional parts left
// out.
func (ns Nodes) Plain() string {
	var parts []string
	for _, n := range ns {
		if n.Type == WordNode {
			parts = append(parts, n.Text)
		}
	}
	return strings.Join(parts, " ")
}

// WithOptionalParts joins Word and Round nodes keeping the round brackets:
// `(a) Foo`.
func (ns Nodes) WithOptionalParts() string {
	var parts []string
	for _, n := range ns {
		if n.Type == WordNode || n.Type == RoundNode {
			parts = append(parts, n.String())
		}
	}
	return strings.Join(parts, " ")
}

// Acronyms flattens the items of all Angle nodes in source order.
func (ns Nodes) Acronyms() []string {
	var acronyms []string
	for _, n := range ns {
		if n.Type == AngleNode {
			acronyms = append(acronyms, n.Items...)
		}
	}
	return acronyms
}

// Comments returns the texts of all Square nodes in source order.
func (ns Nodes) Comments() []string {
	var comments []string
	for _, n := range ns {
		if n.Type == SquareNode {
			comments = append(comments, n.Text)
		}
	}
	return comments
}

// GenderTags returns the raw texts of all Curly nodes in source order.
// Interpreting them is up to the caller.
func (ns Nodes) GenderTags() []string {
	var tags []string
	for _, n := range ns {
		if n.Type == CurlyNode {
			tags = append(tags, n.Text)
		}
	}
	return tags
}
