// Package enum provides closed sets of string labels.
//
// A Set is declared once, usually at package init, and never changes. Each
// label is represented by its own string value, so a label compares equal to
// the literal it was declared with and can be used directly as a switch
// discriminant or JSON field value.
package enum

import "fmt"

// Set is an ordered, immutable collection of distinct labels.
type Set[T ~string] struct {
	labels []T
	index  map[T]struct{}
}

// New declares a label set. Declaration order is kept for Labels.
// Panics on a duplicate label: two labels aliasing the same tag is a
// programming error, not a runtime condition.
func New[T ~string](labels ...T) Set[T] {
	s := Set[T]{
		labels: make([]T, 0, len(labels)),
		index:  make(map[T]struct{}, len(labels)),
	}
	for _, l := range labels {
		if _, dup := s.index[l]; dup {
			panic(fmt.Sprintf("enum: duplicate label %q", string(l)))
		}
		s.index[l] = struct{}{}
		s.labels = append(s.labels, l)
	}
	return s
}

// Map returns a fresh mapping of every label to itself.
func (s Set[T]) Map() map[T]T {
	m := make(map[T]T, len(s.labels))
	for _, l := range s.labels {
		m[l] = l
	}
	return m
}

// Has reports whether v is one of the declared labels.
func (s Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Parse converts a raw string into a label when it is declared.
func (s Set[T]) Parse(raw string) (T, bool) {
	v := T(raw)
	if !s.Has(v) {
		var zero T
		return zero, false
	}
	return v, true
}

// Labels returns the labels in declaration order. The slice is a copy.
func (s Set[T]) Labels() []T {
	out := make([]T, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of declared labels.
func (s Set[T]) Len() int {
	return len(s.labels)
}
