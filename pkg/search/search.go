// Package search implements the console's list filtering: plain
// case-insensitive substring membership over a configurable set of fields.
// No ranking, no relevance.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fields extracts the searchable field values of an item.
type Fields[T any] func(T) []string

// Filter returns the subsequence of items (order preserved) whose configured
// fields contain query as a case-insensitive substring. An empty query
// returns the input unchanged. Case folding is Unicode-aware.
func Filter[T any](items []T, query string, fields Fields[T]) []T {
	if query == "" {
		return items
	}
	fold := cases.Fold()
	q := fold.String(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(fold.String(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
