package phrase

type NodeType int

const (
	// WordNode is bare text at the root of the phrase, not enclosed in any
	// bracket.
	WordNode NodeType = iota + 1

	// AngleNode is an abbreviation/acronym list: `<foo>` or `<foo, bar>`.
	AngleNode

	// RoundNode is an optional part: `(foo)`. Optional parts count towards
	// the indexed word but not towards the plain word.
	RoundNode

	// SquareNode is a visible comment: `[foo]`.
	SquareNode

	// CurlyNode is a gender/grammatical tag: `{f}`, `{pl}`, ...
	CurlyNode
)

func (nt NodeType) String() string {
	return nodeTypeToDescription[nt]
}

func (nt NodeType) GoString() string {
	return nodeTypeToDescription[nt]
}

func init() {
	// make sure we panic if a description isn't declared
	for nt := WordNode; nt <= CurlyNode; nt++ {
		if nodeTypeToDescription[nt] == "" {
			panic("you have not updated nodeTypeToDescription")
		}
	}
}

var nodeTypeToDescription = map[NodeType]string{
	WordNode:   "WordNode",
	AngleNode:  "AngleNode",
	RoundNode:  "RoundNode",
	SquareNode: "SquareNode",
	CurlyNode:  "CurlyNode",
}
