/*
Package iterator provides the iterator abstractions of the containers module.

Iterators are positions within a container. A bidirectional iterator can be
moved one step forward or backward; a random-access iterator additionally
supports jumps of arbitrary distance in constant time. Iterators are values:
moving an iterator returns a new one.

Half-open ranges [first, last) are the unit of work for all algorithms in this
package. Callers have to make sure that last is reachable from first.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package iterator

import "iter"

// Bidirectional is an iterator which is able to step through a container in
// both directions. I is the iterator type itself, V is the element type.
type Bidirectional[I any, V any] interface {
	Next() I
	Prev() I
	Value() V
	Equal(other I) bool
}

// RandomAccess is a bidirectional iterator with constant time jumps.
type RandomAccess[I any, V any] interface {
	Bidirectional[I, V]
	Add(n int) I
	Sub(other I) int
	Less(other I) bool
}

// Distance returns the number of steps from first to last.
//
// For random-access iterators this is O(1), otherwise linear.
func Distance[I Bidirectional[I, V], V any](first, last I) int {
	if ra, ok := any(last).(interface{ Sub(I) int }); ok {
		return ra.Sub(first)
	}
	n := 0
	for !first.Equal(last) {
		first = first.Next()
		n++
	}
	return n
}

// Advance moves it by n positions. n may be negative.
func Advance[I Bidirectional[I, V], V any](it I, n int) I {
	if ra, ok := any(it).(interface{ Add(int) I }); ok {
		return ra.Add(n)
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Equal reports whether the range [first1, last1) equals the range of the
// same length starting at first2, using eq to compare elements.
func Equal[I1 Bidirectional[I1, V1], I2 Bidirectional[I2, V2], V1, V2 any](
	first1, last1 I1, first2 I2, eq func(V1, V2) bool) bool {
	//
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Value(), first2.Value()) {
			return false
		}
	}
	return true
}

// Lexicographical compares the ranges [first1, last1) and [first2, last2)
// element by element. It returns a negative number if the first range orders
// before the second, zero if both are equal, and a positive number otherwise.
// A range which is a proper prefix of the other orders first.
func Lexicographical[I Bidirectional[I, V], V any](first1, last1, first2, last2 I,
	cmp func(V, V) int) int {
	//
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if first2.Equal(last2) {
			return 1
		}
		if c := cmp(first1.Value(), first2.Value()); c != 0 {
			return c
		}
	}
	if first2.Equal(last2) {
		return 0
	}
	return -1
}

// Seq returns an iterator over the values of range [first, last), to be used
// with range-over-func.
func Seq[I Bidirectional[I, V], V any](first, last I) iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
