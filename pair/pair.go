/*
Package pair provides an ordered 2-tuple.

Pairs compare lexicographically: first by their first component, then, for
equal first components, by their second one. The ordered map of package bstmap
stores its entries as pairs of key and mapped value.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pair

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pair is a plain two-field value. Pairs have no identity beyond field equality.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Make creates a pair, letting the compiler infer the component types.
func Make[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Values returns both components.
func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Equal reports whether both components of a and b are equal.
func Equal[A, B comparable](a, b Pair[A, B]) bool {
	return a.First == b.First && a.Second == b.Second
}

// Compare returns -1, 0 or +1, comparing a and b lexicographically.
func Compare[A, B constraints.Ordered](a, b Pair[A, B]) int {
	return CompareFunc(a, b, cmpOrdered[A], cmpOrdered[B])
}

// Less reports whether a orders before b.
//
//	a < b  ⇔  a.First < b.First || (!(b.First < a.First) && a.Second < b.Second)
func Less[A, B constraints.Ordered](a, b Pair[A, B]) bool {
	if a.First < b.First {
		return true
	}
	if b.First < a.First {
		return false
	}
	return a.Second < b.Second
}

// CompareFunc compares a and b lexicographically, using client-provided
// comparison functions for the components. A comparison function returns a
// negative number for x < y, zero for x == y and a positive number otherwise.
func CompareFunc[A, B any](a, b Pair[A, B], cmpA func(A, A) int, cmpB func(B, B) int) int {
	if c := cmpA(a.First, b.First); c != 0 {
		return c
	}
	return cmpB(a.Second, b.Second)
}

func cmpOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case y < x:
		return 1
	}
	return 0
}
