package dictcc

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupedFixture(t *testing.T, input, term string) *GroupedResult {
	t.Helper()
	dict, err := read(strings.NewReader(input), "test.txt")
	require.NoError(t, err)
	result, err := dict.Query(term).Execute()
	require.NoError(t, err)
	return result.Grouped()
}

func TestGroupedClassOrder(t *testing.T) {
	input := "# DE-EN\n" +
		"laufen x\trun x\tverb\n" +
		"Lauf x\trun x\tnoun\n" +
		"lauffreudig x\trun-happy x\tadj\n"
	grouped := groupedFixture(t, input, "x")

	require.Len(t, grouped.WordCountGroups, 1)
	groups := grouped.WordCountGroups[0].ClassGroups
	require.Len(t, groups, 3)
	assert.Equal(t, Verbs, groups[0].Group)
	assert.Equal(t, Nouns, groups[1].Group)
	assert.Equal(t, Others, groups[2].Group)
	for _, g := range groups {
		assert.Len(t, g.Entries, 1)
	}
}

func TestGroupedWordCountOrder(t *testing.T) {
	input := "# DE-EN\n" +
		"ein ganz langes Haus\ta very long house\tnoun\n" +
		"Haus\thouse\tnoun\n" +
		"kleines Haus\tsmall house\tnoun\n"
	grouped := groupedFixture(t, input, "haus")

	require.Len(t, grouped.WordCountGroups, 3)
	assert.Equal(t, 1, grouped.WordCountGroups[0].WordCount)
	assert.Equal(t, 2, grouped.WordCountGroups[1].WordCount)
	assert.Equal(t, 4, grouped.WordCountGroups[2].WordCount)
}

func TestGroupedWordCountPerDirection(t *testing.T) {
	// left has one word, right has two: the counting side follows the
	// query direction, bidirectional takes the maximum
	input := "# DE-EN\nGartenhaus\tgarden house\tnoun\n"
	dict, err := read(strings.NewReader(input), "test.txt")
	require.NoError(t, err)

	toRight, err := dict.Query("gartenhaus").SetDirection(ToRight).Execute()
	require.NoError(t, err)
	assert.Equal(t, 1, toRight.Grouped().WordCountGroups[0].WordCount)

	toLeft, err := dict.Query("house").SetDirection(ToLeft).Execute()
	require.NoError(t, err)
	assert.Equal(t, 2, toLeft.Grouped().WordCountGroups[0].WordCount)

	both, err := dict.Query("gartenhaus").Execute()
	require.NoError(t, err)
	assert.Equal(t, 2, both.Grouped().WordCountGroups[0].WordCount)
}

func TestGroupedEntriesSortedByIndexedWord(t *testing.T) {
	input := "# DE-EN\n" +
		"zzz x\tccc x\tnoun\n" +
		"aaa x\tbbb x\tnoun\n" +
		"mmm x\taaa x\tnoun\n"

	t.Run("left side for bidirectional", func(t *testing.T) {
		grouped := groupedFixture(t, input, "x")
		entries := grouped.WordCountGroups[0].ClassGroups[0].Entries
		require.Len(t, entries, 3)
		assert.Equal(t, "aaa x", entries[0].Left.IndexedWord)
		assert.Equal(t, "mmm x", entries[1].Left.IndexedWord)
		assert.Equal(t, "zzz x", entries[2].Left.IndexedWord)
	})

	t.Run("right side for to-left", func(t *testing.T) {
		dict, err := read(strings.NewReader(input), "test.txt")
		require.NoError(t, err)
		result, err := dict.Query("x").SetDirection(ToLeft).Execute()
		require.NoError(t, err)
		entries := result.Grouped().WordCountGroups[0].ClassGroups[0].Entries
		require.Len(t, entries, 3)
		assert.Equal(t, "aaa x", entries[0].Right.IndexedWord)
		assert.Equal(t, "bbb x", entries[1].Right.IndexedWord)
		assert.Equal(t, "ccc x", entries[2].Right.IndexedWord)
	})
}

func TestClassGroupHeader(t *testing.T) {
	assert.Equal(t, "Verbs", ClassGroup{WordCount: 1, Group: Verbs}.Header())
	assert.Equal(t, "Nouns", ClassGroup{WordCount: 0, Group: Nouns}.Header())
	assert.Equal(t, "2 Words: Others", ClassGroup{WordCount: 2, Group: Others}.Header())
}

func TestClassifyWordClassGroup(t *testing.T) {
	assert.Equal(t, Verbs, classifyWordClassGroup([]WordClass{Noun, Verb}))
	assert.Equal(t, Nouns, classifyWordClassGroup([]WordClass{Adjective, Noun}))
	assert.Equal(t, Others, classifyWordClassGroup([]WordClass{Adjective}))
	assert.Equal(t, Others, classifyWordClassGroup(nil))
}

func TestRender(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	input := "# DE-EN\n" +
		"gehen x\tgo x\tverb\n" +
		"Haus x\thouse x\tnoun\n" +
		"kleines gelbes Haus\tsmall yellow house\tnoun\n"
	grouped := groupedFixture(t, input, "x")
	rendered := grouped.Render()

	assert.Contains(t, rendered, "Verbs")
	assert.Contains(t, rendered, "Nouns")
	assert.Contains(t, rendered, "gehen x | go x | Verb")

	grouped = groupedFixture(t, input, "haus")
	rendered = grouped.Render()
	assert.Contains(t, rendered, "3 Words: Nouns")
}

func TestRenderPhraseWithColorsDisabled(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	input := "# DE-EN\n(das) Haus {n} [building] <H>\thouse\tnoun\n"
	grouped := groupedFixture(t, input, "das haus")
	rendered := grouped.Render()

	// with colors globally disabled the bracket syntax is rendered plainly
	assert.Contains(t, rendered, "(das) Haus {n} [building] <H>")
}
