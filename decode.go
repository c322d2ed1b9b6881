package dictcc

import (
	"golang.org/x/net/html"
)

// decodeEntities applies HTML entity decoding (named and numeric) to a
// phrase column. The decoder leaves malformed escapes in place, so a bad
// escape degrades to passthrough instead of failing the entry.
func decodeEntities(s string) string {
	return html.UnescapeString(s)
}
