package filter

// Searchable exposes the textual fields a query is matched against.
type Searchable interface {
	SearchFields() []string
}

// Text returns the items matching q in input order. The result never aliases
// items and is non-nil even for nil input.
func Text[T Searchable](items []T, q Query) []T {
	return Where(items, func(item T) bool {
		return q.Match(item.SearchFields()...)
	})
}

// Where returns the items satisfying keep in input order.
func Where[T any](items []T, keep func(T) bool) []T {
	res := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			res = append(res, item)
		}
	}
	return res
}
