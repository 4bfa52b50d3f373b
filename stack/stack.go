/*
Package stack provides a LIFO adapter on top of a vector.

The top of the stack is the back of the underlying vector. Push, Pop and Top
are amortized O(1). Top, TopRef and Pop on an empty stack are undefined.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stack

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/vector"
)

// Stack is a last-in first-out container. The zero value is an empty stack
// using the heap allocator.
type Stack[T any] struct {
	c vector.Vector[T]
}

// New creates an empty stack, storing its elements with the allocator of cfg.
func New[T any](cfg vector.Config[T]) (*Stack[T], error) {
	v, err := vector.New(cfg)
	if err != nil {
		return nil, err
	}
	s := &Stack[T]{}
	s.c.Swap(v)
	return s, nil
}

// FromVector creates a stack holding a copy of v. The last element of v is
// the top of the stack.
func FromVector[T any](v *vector.Vector[T]) (*Stack[T], error) {
	c, err := v.Clone()
	if err != nil {
		return nil, err
	}
	s := &Stack[T]{}
	s.c.Swap(c)
	return s, nil
}

// Push puts a copy of value on top of s.
func (s *Stack[T]) Push(value T) error {
	return s.c.PushBack(value)
}

// Pop removes the top element. s must not be empty.
func (s *Stack[T]) Pop() {
	s.c.PopBack()
}

// Top returns the top element. s must not be empty.
func (s *Stack[T]) Top() T {
	return s.c.Back()
}

// TopRef returns a reference to the top element. s must not be empty.
func (s *Stack[T]) TopRef() *T {
	return s.c.BackRef()
}

// Size returns the number of elements on s.
func (s *Stack[T]) Size() int {
	return s.c.Size()
}

// Empty reports whether s has no elements.
func (s *Stack[T]) Empty() bool {
	return s.c.Empty()
}

// Release destroys all elements and frees the storage of s.
func (s *Stack[T]) Release() {
	s.c.Release()
}

// Clone returns a deep copy of s.
func (s *Stack[T]) Clone() (*Stack[T], error) {
	return FromVector(&s.c)
}

// Equal reports whether a and b hold equal elements in equal order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return vector.Equal(&a.c, &b.c)
}

// Compare compares a and b lexicographically from bottom to top.
func Compare[T constraints.Ordered](a, b *Stack[T]) int {
	return vector.Compare(&a.c, &b.c)
}

// Less reports whether a orders lexicographically before b, comparing from
// bottom to top.
func Less[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.Less(&a.c, &b.c)
}

// LessOrEqual reports whether a is lexicographically less than or equal to b.
func LessOrEqual[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.LessOrEqual(&a.c, &b.c)
}

// Greater reports whether a orders lexicographically after b.
func Greater[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.Greater(&a.c, &b.c)
}

// GreaterOrEqual reports whether a is lexicographically greater than or
// equal to b.
func GreaterOrEqual[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.GreaterOrEqual(&a.c, &b.c)
}
