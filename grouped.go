package dictcc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"

	"github.com/kedeggel/dictcc/phrase"
)

// WordClassGroup is the coarse classification used for grouped display,
// inspired by the dict.cc result page: entries with a Verb class are verbs,
// remaining entries with a Noun class are nouns, the rest are others.
type WordClassGroup int

const (
	Verbs WordClassGroup = iota + 1
	Nouns
	Others
)

var wordClassGroupToDescription = map[WordClassGroup]string{
	Verbs:  "Verbs",
	Nouns:  "Nouns",
	Others: "Others",
}

func (g WordClassGroup) String() string {
	return wordClassGroupToDescription[g]
}

func classifyWordClassGroup(classes []WordClass) WordClassGroup {
	switch {
	case lo.Contains(classes, Verb):
		return Verbs
	case lo.Contains(classes, Noun):
		return Nouns
	default:
		return Others
	}
}

// ClassGroup is the innermost bucket: entries sharing a word count and a
// word class group, sorted by indexed word.
type ClassGroup struct {
	WordCount int
	Group     WordClassGroup
	Entries   []Entry
}

// WordCountGroup collects the class groups of one word count.
type WordCountGroup struct {
	WordCount   int
	ClassGroups []ClassGroup
}

// GroupedResult is the two-layer grouped representation of a QueryResult,
// ready for tabular rendering.
type GroupedResult struct {
	WordCountGroups []WordCountGroup
}

// Grouped buckets the result by word count, then by word class group, and
// sorts each innermost bucket by the indexed word of the side the query ran
// against (left for ToRight and Bidirectional, right for ToLeft).
func (r *QueryResult) Grouped() *GroupedResult {
	wordCount := func(e Entry) int {
		switch r.direction {
		case ToRight:
			return e.Left.WordCount
		case ToLeft:
			return e.Right.WordCount
		}
		return e.maxWordCount()
	}
	indexedWord := func(e Entry) string {
		if r.direction == ToLeft {
			return e.Right.IndexedWord
		}
		return e.Left.IndexedWord
	}

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return wordCount(entries[i]) < wordCount(entries[j])
	})

	grouped := &GroupedResult{}
	for _, run := range groupRuns(entries, wordCount) {
		countGroup := WordCountGroup{WordCount: wordCount(run[0])}

		byClass := make([]Entry, len(run))
		copy(byClass, run)
		sort.SliceStable(byClass, func(i, j int) bool {
			return classifyWordClassGroup(byClass[i].WordClasses) < classifyWordClassGroup(byClass[j].WordClasses)
		})

		for _, classRun := range groupRuns(byClass, func(e Entry) WordClassGroup {
			return classifyWordClassGroup(e.WordClasses)
		}) {
			sorted := make([]Entry, len(classRun))
			copy(sorted, classRun)
			sort.SliceStable(sorted, func(i, j int) bool {
				return indexedWord(sorted[i]) < indexedWord(sorted[j])
			})
			countGroup.ClassGroups = append(countGroup.ClassGroups, ClassGroup{
				WordCount: countGroup.WordCount,
				Group:     classifyWordClassGroup(classRun[0].WordClasses),
				Entries:   sorted,
			})
		}
		grouped.WordCountGroups = append(grouped.WordCountGroups, countGroup)
	}
	return grouped
}

// groupRuns splits a sorted slice into runs of equal keys, preserving
// order.
func groupRuns[T any, K comparable](entries []T, key func(T) K) [][]T {
	var runs [][]T
	for i := 0; i < len(entries); {
		j := i + 1
		for j < len(entries) && key(entries[j]) == key(entries[i]) {
			j++
		}
		runs = append(runs, entries[i:j])
		i = j
	}
	return runs
}

// Header is the displayed bucket title: the bare group name for entries of
// at most one word, otherwise prefixed with the word count.
func (g ClassGroup) Header() string {
	if g.WordCount <= 1 {
		return g.Group.String()
	}
	return fmt.Sprintf("%d Words: %s", g.WordCount, g.Group)
}

// Render renders all buckets as aligned three-column tables (left phrase,
// right phrase, word classes), one header per bucket and a blank line
// between buckets. Colors follow the node kinds and honor the global pterm
// color switch.
func (g *GroupedResult) Render() string {
	var sections []string
	for _, countGroup := range g.WordCountGroups {
		for _, classGroup := range countGroup.ClassGroups {
			sections = append(sections, renderClassGroup(classGroup))
		}
	}
	return strings.Join(sections, "\n")
}

func renderClassGroup(group ClassGroup) string {
	data := make(pterm.TableData, 0, len(group.Entries))
	for _, entry := range group.Entries {
		classes := lo.Map(entry.WordClasses, func(wc WordClass, _ int) string { return wc.String() })
		data = append(data, []string{
			colorizePhrase(entry.Left.Nodes),
			colorizePhrase(entry.Right.Nodes),
			strings.Join(classes, ", "),
		})
	}

	table, _ := pterm.DefaultTable.
		WithSeparator(" | ").
		WithData(data).
		Srender()

	return group.Header() + "\n" + table + "\n"
}

// colorizePhrase renders a phrase with each fragment in the color of its
// kind: acronym lists bright red, optional parts bright green, comments
// bright blue, gender tags bright cyan, bare words in the default color.
func colorizePhrase(nodes phrase.Nodes) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		switch n.Type {
		case phrase.AngleNode:
			parts[i] = pterm.FgLightRed.Sprint(n.String())
		case phrase.RoundNode:
			parts[i] = pterm.FgLightGreen.Sprint(n.String())
		case phrase.SquareNode:
			parts[i] = pterm.FgLightBlue.Sprint(n.String())
		case phrase.CurlyNode:
			parts[i] = pterm.FgLightCyan.Sprint(n.String())
		default:
			parts[i] = n.String()
		}
	}
	return strings.Join(parts, " ")
}
