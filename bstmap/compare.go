package bstmap

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/pair"
)

// Equal reports whether a and b have the same size and pairwise equal
// entries in iteration order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, pair.Equal[K, V])
}

// EqualFunc is like Equal, using eq to compare entries.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(x, y pair.Pair[K, V]) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	return iterator.Equal[Iterator[K, V], Iterator[K, V], pair.Pair[K, V], pair.Pair[K, V]](
		a.Begin(), a.End(), b.Begin(), eq)
}

// Compare compares the entry sequences of a and b lexicographically, ordering
// entries as pairs. The result is 0 if a == b, -1 if a < b and +1 if a > b.
func Compare[K, V constraints.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, pair.Compare[K, V])
}

// CompareFunc is like Compare, using cmp to compare entries.
func CompareFunc[K, V any](a, b *Map[K, V], cmp func(x, y pair.Pair[K, V]) int) int {
	return iterator.Lexicographical[Iterator[K, V], pair.Pair[K, V]](a.Begin(), a.End(),
		b.Begin(), b.End(), cmp)
}

// Less reports whether a orders lexicographically before b.
func Less[K, V constraints.Ordered](a, b *Map[K, V]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[K, V constraints.Ordered](a, b *Map[K, V]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders lexicographically after b.
func Greater[K, V constraints.Ordered](a, b *Map[K, V]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[K, V constraints.Ordered](a, b *Map[K, V]) bool {
	return !Less(a, b)
}
