package search

import "strings"

// Record is implemented by every collection element the reducer can filter
type Record interface {
	SearchText() string
	Field(name string) (string, bool)
}

// Query holds the free-text term and the optional attribute filter
type Query struct {
	Term      string `json:"term"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// HasFilter reports whether the attribute filter is active
func (q Query) HasFilter() bool {
	return q.Attribute != "" && q.Value != ""
}

// Filter returns the items matching q in their original order. The attribute
// filter only ever narrows the result of the text search.
func Filter[T Record](items []T, q Query) []T {
	term := strings.ToLower(q.Term)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, term, q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Matches reports whether a single item passes q
func Matches[T Record](item T, q Query) bool {
	return matches(item, strings.ToLower(q.Term), q)
}

func matches[T Record](item T, lowerTerm string, q Query) bool {
	if lowerTerm != "" && !strings.Contains(strings.ToLower(item.SearchText()), lowerTerm) {
		return false
	}
	if !q.HasFilter() {
		return true
	}
	// exact, case-sensitive; unknown attributes match nothing
	v, ok := item.Field(q.Attribute)
	return ok && v == q.Value
}
