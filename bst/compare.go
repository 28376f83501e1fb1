package bst

import "cmp"

// Ordering is the result of comparing two elements.
type Ordering int8

// Possible results of a Comparator.
const (
	Lower  Ordering = -1
	Equal  Ordering = 0
	Higher Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Lower:
		return "Lower"
	case Equal:
		return "Equal"
	case Higher:
		return "Higher"
	}
	return "Ordering(?)"
}

// Comparator compares a new element a against an element b already stored in
// a tree. It reports Higher if a has to go to the right of b.
type Comparator[T any] func(a, b T) Ordering

// Ordered returns a Comparator for types with a natural order.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		return Ordering(cmp.Compare(a, b))
	}
}

// Reverse inverts the order of a comparator.
func Reverse[T any](compare Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return -compare(a, b)
	}
}
