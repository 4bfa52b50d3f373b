package vector

import "github.com/npillmayer/containers/iterator"

// Iterator is a random-access position within the buffer of a vector.
//
// An iterator remembers the buffer it was taken from. It is valid as long as
// the vector does not reallocate and the slot it refers to is not shifted by
// an insertion or erasure in front of it.
type Iterator[T any] struct {
	buf []T
	pos int
}

// ReverseIterator steps through a vector from back to front.
type ReverseIterator[T any] = iterator.Reverse[Iterator[T], T]

var _ iterator.RandomAccess[Iterator[int], int] = Iterator[int]{}

// Begin returns an iterator to the first element of v.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: v.start, pos: 0}
}

// End returns an iterator to the position past the last element of v.
// It must not be dereferenced.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{buf: v.start, pos: v.size}
}

// RBegin returns a reverse iterator to the last element of v.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return iterator.MakeReverse[Iterator[T], T](v.End())
}

// REnd returns a reverse iterator to the position before the first element.
// It must not be dereferenced.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return iterator.MakeReverse[Iterator[T], T](v.Begin())
}

// iter returns an iterator for index i into the current buffer.
func (v *Vector[T]) iter(i int) Iterator[T] {
	return Iterator[T]{buf: v.start, pos: i}
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() T {
	return it.buf[it.pos]
}

// Ptr returns a pointer to the element at the iterator's position.
func (it Iterator[T]) Ptr() *T {
	return &it.buf[it.pos]
}

// Set overwrites the element at the iterator's position.
func (it Iterator[T]) Set(value T) {
	it.buf[it.pos] = value
}

// Index returns the distance from the beginning of the buffer.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos + 1}
}

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos - 1}
}

// Add returns an iterator n positions away. n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos + n}
}

// Sub returns the distance it - other. Both iterators must refer to the same
// buffer.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return it.pos - other.pos
}

// Less reports whether it is positioned before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.pos < other.pos
}

// Equal reports whether it and other refer to the same position of the same
// buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos && sameBuffer(it.buf, other.buf)
}

func sameBuffer[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}
