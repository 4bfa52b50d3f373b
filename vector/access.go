package vector

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
)

// At returns the element at index i, or ErrOutOfRange if i is not in
// [0, Size).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: vector.At(%d), size is %d", containers.ErrOutOfRange, i, v.size)
	}
	return v.start[i], nil
}

// Index returns the element at index i without checking against Size.
func (v *Vector[T]) Index(i int) T {
	return v.start[i]
}

// Ref returns a pointer to the element at index i without checking against
// Size. The pointer is invalidated by reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.start[i]
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	return v.start[0]
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	return v.start[v.size-1]
}

// BackRef returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) BackRef() *T {
	return &v.start[v.size-1]
}

// All returns an iterator over index/element pairs, in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.start[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of v, in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return iterator.Seq[Iterator[T], T](v.Begin(), v.End())
}

// Backward returns an iterator over the elements of v, from back to front.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return iterator.Seq[ReverseIterator[T], T](v.RBegin(), v.REnd())
}
