package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanWord(t *testing.T) {
	test := func(input, expected, remaining string) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner(input)
			assert.Equal(t, expected, s.scanWord())
			assert.Equal(t, remaining, s.Remaining())
		}
	}

	t.Run("", test("foo", "foo", ""))
	t.Run("", test("foo bar", "foo", " bar"))
	t.Run("", test("foo(bar)", "foo", "(bar)"))
	t.Run("", test("foo[bar]", "foo", "[bar]"))
	t.Run("", test("foo{bar}", "foo", "{bar}"))
	t.Run("", test("foo<bar>", "foo", "<bar>"))
	t.Run("", test("foo)bar", "foo)bar", ""))
	t.Run("", test("foo\tbar", "foo", "\tbar"))
}

func TestScanDelimited(t *testing.T) {
	test := func(input string, open, close byte, expectedBody, remaining string) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner(input)
			body, err := s.scanDelimited(open, close)
			require.NoError(t, err)
			assert.Equal(t, expectedBody, body)
			assert.Equal(t, remaining, s.Remaining())
		}
	}
	testErr := func(input string, open, close byte) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner(input)
			_, err := s.scanDelimited(open, close)
			require.Error(t, err)
		}
	}

	t.Run("", test("(foo)", '(', ')', "foo", ""))
	t.Run("", test("(foo)bar", '(', ')', "foo", "bar"))
	t.Run("", test("[a b]", '[', ']', "a b", ""))
	t.Run("", test("{pl}", '{', '}', "pl", ""))
	// the body may contain the closing characters of other bracket kinds
	t.Run("", test("(a]b})", '(', ')', "a]b}", ""))

	t.Run("", testErr("(foo", '(', ')'))
	t.Run("", testErr("()", '(', ')'))
	t.Run("", testErr("((a))", '(', ')'))
}
