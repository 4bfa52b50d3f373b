package bstmap

import (
	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/pair"
)

// Iterator is a position within a map, stepping through the entries in
// ascending key order.
type Iterator[K, V any] struct {
	n *node[K, V]
}

// ReverseIterator steps through a map in descending key order.
type ReverseIterator[K, V any] = iterator.Reverse[Iterator[K, V], pair.Pair[K, V]]

var _ iterator.Bidirectional[Iterator[int, int], pair.Pair[int, int]] = Iterator[int, int]{}

// Next returns an iterator to the entry with the next larger key, or to the
// end sentinel.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{n: successor(it.n)}
}

// Prev returns an iterator to the entry with the next smaller key, or to the
// rend sentinel.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{n: predecessor(it.n)}
}

// Value returns a copy of the entry.
func (it Iterator[K, V]) Value() pair.Pair[K, V] {
	return *it.n.entry()
}

// Key returns the key of the entry.
func (it Iterator[K, V]) Key() K {
	return it.n.key()
}

// Mapped returns a reference to the mapped value of the entry. Keys are not
// accessible for writing.
func (it Iterator[K, V]) Mapped() *V {
	return &it.n.entry().Second
}

// Equal reports whether it and other refer to the same node.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.n == other.n
}
