// Package filter narrows already-fetched entity lists by free-text query and
// category. Every function is pure: the output depends only on the arguments
// and inputs are never modified.
package filter

import (
	"strings"
	"unicode/utf8"
)

// Query is a trimmed, case-folded search string. The zero value is the
// empty query; any other value comes from NewQuery.
type Query struct {
	text string
}

// NewQuery normalizes raw user input.
func NewQuery(raw string) Query {
	return Query{text: strings.ToLower(strings.TrimSpace(raw))}
}

// String returns the normalized text.
func (q Query) String() string {
	return q.text
}

// Empty reports whether the query disables text filtering.
func (q Query) Empty() bool {
	return q.text == ""
}

// Len returns the query length in runes.
func (q Query) Len() int {
	return utf8.RuneCountInString(q.text)
}

// Match reports whether any field contains the query, ignoring case.
func (q Query) Match(fields ...string) bool {
	if q.Empty() {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q.text) {
			return true
		}
	}
	return false
}

// Tag reports whether value passes a discrete selector such as a role or a
// status. An empty selector or "all" passes everything.
func Tag(value, selected string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" || strings.EqualFold(selected, string(All)) {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(value), selected)
}
