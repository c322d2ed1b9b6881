package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	test := func(input string, expected Nodes) func(*testing.T) {
		return func(t *testing.T) {
			nodes, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, expected, nodes)
		}
	}

	t.Run("", test("word", Nodes{{Type: WordNode, Text: "word"}}))
	t.Run("", test("two words", Nodes{
		{Type: WordNode, Text: "two"},
		{Type: WordNode, Text: "words"},
	}))
	t.Run("", test("  padded   words  ", Nodes{
		{Type: WordNode, Text: "padded"},
		{Type: WordNode, Text: "words"},
	}))

	t.Run("", test("(foo)", Nodes{{Type: RoundNode, Text: "foo"}}))
	t.Run("", test("[foo]", Nodes{{Type: SquareNode, Text: "foo"}}))
	t.Run("", test("{foo}", Nodes{{Type: CurlyNode, Text: "foo"}}))
	t.Run("", test("<foo>", Nodes{{Type: AngleNode, Items: []string{"foo"}}}))
	t.Run("", test("<foo, bar, baz>", Nodes{{Type: AngleNode, Items: []string{"foo", "bar", "baz"}}}))
	// a comma without a following space does not separate items
	t.Run("", test("<f,oo, ba,r, baz,>", Nodes{{Type: AngleNode, Items: []string{"f,oo", "ba,r", "baz,"}}}))

	t.Run("", test("(optional) word {f} [comment] <foo, bar, baz>", Nodes{
		{Type: RoundNode, Text: "optional"},
		{Type: WordNode, Text: "word"},
		{Type: CurlyNode, Text: "f"},
		{Type: SquareNode, Text: "comment"},
		{Type: AngleNode, Items: []string{"foo", "bar", "baz"}},
	}))

	// brackets may sit directly next to a word
	t.Run("", test("word(opt)", Nodes{
		{Type: WordNode, Text: "word"},
		{Type: RoundNode, Text: "opt"},
	}))

	// closing brackets are ordinary word characters
	t.Run("", test("a>b", Nodes{{Type: WordNode, Text: "a>b"}}))
	t.Run("", test("foo)", Nodes{{Type: WordNode, Text: "foo)"}}))

	// multi-byte runes pass through words untouched
	t.Run("", test("Größe {f}", Nodes{
		{Type: WordNode, Text: "Größe"},
		{Type: CurlyNode, Text: "f"},
	}))
}

func TestParseErrors(t *testing.T) {
	test := func(input string) func(*testing.T) {
		return func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.IsType(t, Error{}, err)
		}
	}

	t.Run("", test(""))
	t.Run("", test("   "))
	t.Run("", test("broken (unclosed"))
	t.Run("", test("(nested (brackets))"))
	t.Run("", test("()"))
	t.Run("", test("[]"))
	t.Run("", test("{}"))
	t.Run("", test("<>"))
	t.Run("", test("<a, b"))
	t.Run("", test("[unclosed"))
}

func TestParseWithFallback(t *testing.T) {
	t.Run("clean parse is passed through", func(t *testing.T) {
		nodes := ParseWithFallback("(a) Foo")
		assert.Equal(t, Nodes{
			{Type: RoundNode, Text: "a"},
			{Type: WordNode, Text: "Foo"},
		}, nodes)
	})

	t.Run("malformed phrase degrades to a single word node", func(t *testing.T) {
		nodes := ParseWithFallback("broken (unclosed")
		assert.Equal(t, Nodes{{Type: WordNode, Text: "broken (unclosed"}}, nodes)
	})
}
