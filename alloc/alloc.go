/*
Package alloc provides allocators for the containers module.

An allocator separates four steps which Go usually performs in one go:
acquiring raw storage, initializing an element in place, finalizing an element
and releasing the storage. Containers compose every operation which changes
the size or location of their storage from these primitives, and never confuse
"has memory" with "is initialized".

In Go, raw storage is a slice of zero values. A slot is considered
uninitialized until an element has been constructed into it, and is reset to
the zero value when the element is destroyed, which lets the garbage collector
reclaim anything the element referenced.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/npillmayer/containers"
)

// Allocator is the memory-resource strategy of a container holding elements
// of type E.
type Allocator[E any] interface {
	// Allocate returns raw storage for n elements. All slots are uninitialized.
	Allocate(n int) ([]E, error)
	// Deallocate releases storage obtained from Allocate. All slots have to be
	// uninitialized.
	Deallocate(buf []E)
	// Construct initializes the slot at p as a copy of v.
	Construct(p *E, v E) error
	// Destroy finalizes the element at p, leaving an uninitialized slot.
	Destroy(p *E)
	// Move constructs the element at src into slot dst and destroys src.
	// It does not fail.
	Move(dst, src *E)
	// MaxSize is the maximum number of elements Allocate will accept.
	MaxSize() int
}

// Heap is the default allocator, using the Go heap.
// The zero value is ready to use.
type Heap[E any] struct{}

var _ Allocator[int] = Heap[int]{}

// Allocate returns a fresh slice of n zero values.
func (Heap[E]) Allocate(n int) ([]E, error) {
	if n < 0 || n > maxElements[E]() {
		return nil, fmt.Errorf("%w: cannot allocate %d elements", containers.ErrLengthExceeded, n)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]E, n), nil
}

// Deallocate drops the reference to buf. The garbage collector takes care of
// the rest.
func (Heap[E]) Deallocate(buf []E) {}

// Construct copies v into the slot at p.
func (Heap[E]) Construct(p *E, v E) error {
	*p = v
	return nil
}

// Destroy resets the slot at p to the zero value.
func (Heap[E]) Destroy(p *E) {
	var zero E
	*p = zero
}

// Move relocates the element at src to dst.
func (Heap[E]) Move(dst, src *E) {
	*dst = *src
	var zero E
	*src = zero
}

// MaxSize returns the number of elements addressable, given the element size.
func (Heap[E]) MaxSize() int {
	return maxElements[E]()
}

func maxElements[E any]() int {
	var zero E
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}
