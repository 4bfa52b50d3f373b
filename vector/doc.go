/*
Package vector provides a dynamic array with the contract of a classic vector.

A vector owns one contiguous buffer, obtained from an allocator. Elements
[0, Size) are constructed, slots [Size, Capacity) are reserved but
uninitialized. Capacity grows by doubling whenever an insertion needs more
room than is available, and it never shrinks (except to zero on Release).

	Operation      |  Complexity
	---------------+----------------------
	Index, At      |  O(1)
	PushBack       |  O(1) amortized
	PopBack        |  O(1)
	Insert, Erase  |  O(n) (elements after the position are shifted)
	Reserve        |  O(n) if reallocating

Iterator invalidation: an operation that reallocates (Reserve, and any
insertion which exceeds the capacity) invalidates all iterators and element
pointers. Insert and Erase without reallocation invalidate iterators at or
after the position. Invalidated iterators are not detected; using them is a
programming error.

Unchecked access (Index, Ref, Front, Back, PopBack) on positions outside of
[0, Size) is undefined. Go's bounds checks will catch some, but not all, of
these cases.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer of the containers module.
func tracer() tracing.Trace {
	return containers.T()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
