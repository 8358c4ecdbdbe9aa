// Package filter derives the visible rows of a section from its snapshot.
// Everything here is pure: the inputs (role, search text) belong to the
// view and the result is recomputed on every render.
package filter

import "strings"

// All is the option that disables an equality filter.
const All = "Todos"

// Predicate reports whether an item stays visible.
type Predicate[T any] func(T) bool

// Apply returns the items matching every predicate, in their original
// order. A nil predicate is ignored.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Equals keeps items whose field equals want. An empty want or All
// matches everything.
func Equals[T any](field func(T) string, want string) Predicate[T] {
	return func(item T) bool {
		if want == "" || want == All {
			return true
		}
		return field(item) == want
	}
}

// Contains keeps items where any of fields contains query, ignoring
// case. An empty query matches everything.
func Contains[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(query)
	return func(item T) bool {
		if q == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), q) {
				return true
			}
		}
		return false
	}
}
