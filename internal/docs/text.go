package docs

import (
	"regexp"
	"strings"
)

// tagRe matches a single markup tag, from '<' up to the next '>'.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// entities are unescaped in order; "&amp;" goes first.
var entities = [...][2]string{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
}

// Normalize projects an inline HTML fragment to plain text: tags are
// stripped, the five basic entities are unescaped, and whitespace runs are
// collapsed to single spaces with the ends trimmed. Other entities are left
// as they are.
func Normalize(fragment string) string {
	s := tagRe.ReplaceAllString(fragment, "")
	for _, e := range entities {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return strings.Join(strings.Fields(s), " ")
}
