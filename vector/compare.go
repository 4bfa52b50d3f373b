package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/iterator"
)

// Equal reports whether a and b have the same size and equal elements at
// every index.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, using eq to compare elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	return iterator.Equal[Iterator[T], Iterator[T], T, T](a.Begin(), a.End(), b.Begin(), eq)
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b and +1 if a > b. A vector which is a proper prefix of the other
// orders first.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		}
		return 0
	})
}

// CompareFunc is like Compare, using cmp to compare elements.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return iterator.Lexicographical[Iterator[T], T](a.Begin(), a.End(), b.Begin(), b.End(), cmp)
}

// Less reports whether a orders lexicographically before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders lexicographically after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
