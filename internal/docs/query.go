package docs

import "strings"

// Query narrows the items of a lookup. Empty Kind and Text do not filter;
// Limit must be set to NoLimit to keep every item.
type Query struct {
	// Kind keeps items whose kind label equals it, ignoring case.
	Kind string
	// Text keeps items whose name or description contains it, ignoring case.
	Text string
	// Offset skips that many leading items after filtering.
	Offset int
	// Limit caps the number of items returned. Negative means no limit.
	Limit int
}

// NoLimit is the Limit value that returns every remaining item.
const NoLimit = -1

// Apply filters by kind, then by text, then applies offset and limit.
// The input slice is never modified.
func (q Query) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	needle := strings.ToLower(q.Text)
	for _, it := range items {
		if q.Kind != "" && !it.Kind().Matches(q.Kind) {
			continue
		}
		if q.Text != "" && !matchesText(it, needle) {
			continue
		}
		out = append(out, it)
	}

	switch {
	case q.Offset >= len(out):
		out = out[:0]
	case q.Offset > 0:
		out = out[q.Offset:]
	}

	if q.Limit >= 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out
}

func matchesText(it Item, needle string) bool {
	name, desc := it.summary()
	if strings.Contains(strings.ToLower(name), needle) {
		return true
	}
	return desc != nil && strings.Contains(strings.ToLower(*desc), needle)
}
