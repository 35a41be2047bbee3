package seo

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// NormalizeDescription turns an HTML fragment into a single line of text
// suitable for a description meta: entities are decoded once, tags removed
// and whitespace runs collapsed.
func NormalizeDescription(s string) string {
	s = html.UnescapeString(s)
	// The policy decodes the text it reads and escapes the text it keeps.
	// Ampersands are escaped first so that only the escaping is undone.
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
