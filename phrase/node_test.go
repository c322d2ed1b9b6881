package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeString(t *testing.T) {
	assert.Equal(t, "foo", Node{Type: WordNode, Text: "foo"}.String())
	assert.Equal(t, "(foo)", Node{Type: RoundNode, Text: "foo"}.String())
	assert.Equal(t, "[foo]", Node{Type: SquareNode, Text: "foo"}.String())
	assert.Equal(t, "{foo}", Node{Type: CurlyNode, Text: "foo"}.String())
	assert.Equal(t, "<foo>", Node{Type: AngleNode, Items: []string{"foo"}}.String())
	assert.Equal(t, "<foo, bar>", Node{Type: AngleNode, Items: []string{"foo", "bar"}}.String())
}

// Re-serialising the parsed nodes recovers the input modulo whitespace
// normalisation.
func TestRoundTrip(t *testing.T) {
	test := func(input, normalised string) func(*testing.T) {
		return func(t *testing.T) {
			nodes, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, normalised, nodes.String())
		}
	}

	t.Run("", test("(a) Foo {n} [note] <F, FO>", "(a) Foo {n} [note] <F, FO>"))
	t.Run("", test("  spaced   out  ", "spaced out"))
	t.Run("", test("word(opt)[c]", "word (opt) [c]"))
}

func TestProjections(t *testing.T) {
	nodes, err := Parse("(a) Foo {n} [note] <F, FO>")
	require.NoError(t, err)

	assert.Equal(t, "a foo", nodes.IndexedWord())
	assert.Equal(t, 2, nodes.CountWords())
	assert.Equal(t, "Foo", nodes.Plain())
	assert.Equal(t, "(a) Foo", nodes.WithOptionalParts())
	assert.Equal(t, []string{"F", "FO"}, nodes.Acronyms())
	assert.Equal(t, []string{"note"}, nodes.Comments())
	assert.Equal(t, []string{"n"}, nodes.GenderTags())
}

func TestProjectionsKeepSourceOrder(t *testing.T) {
	nodes, err := Parse("<A> one [first] {m} two <B, C> [second] {pl}")
	require.NoError(t, err)

	assert.Equal(t, "one two", nodes.IndexedWord())
	assert.Equal(t, []string{"A", "B", "C"}, nodes.Acronyms())
	assert.Equal(t, []string{"first", "second"}, nodes.Comments())
	assert.Equal(t, []string{"m", "pl"}, nodes.GenderTags())
}
