package alloc

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Counting is an allocator which keeps book of live elements and buffers.
// It delegates to a base allocator (Heap if Base is nil).
//
// Counting makes leaks and double-destroys observable and is able to inject
// failures: Limit caps MaxSize, and FailAfter lets construction fail after a
// given number of successful constructions.
//
// Counting must be used through a pointer.
type Counting[E any] struct {
	Base      Allocator[E] // delegate, Heap[E] if nil
	Limit     int          // if > 0, overrides MaxSize of Base
	FailAfter int          // if > 0, Construct fails once this many constructions succeeded
	live      int          // constructed minus destroyed
	buffers   int          // allocated minus deallocated
	built     int          // number of successful constructions
	moves     int
}

var _ Allocator[int] = &Counting[int]{}

// NewCounting creates a bookkeeping allocator on top of the Go heap.
func NewCounting[E any]() *Counting[E] {
	return &Counting[E]{}
}

func (c *Counting[E]) base() Allocator[E] {
	if c.Base == nil {
		return Heap[E]{}
	}
	return c.Base
}

// Allocate delegates to the base allocator, honouring Limit.
func (c *Counting[E]) Allocate(n int) ([]E, error) {
	if n > c.MaxSize() {
		return nil, fmt.Errorf("%w: cannot allocate %d elements, limit is %d",
			containers.ErrLengthExceeded, n, c.MaxSize())
	}
	buf, err := c.base().Allocate(n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		c.buffers++
	}
	return buf, nil
}

// Deallocate delegates to the base allocator.
func (c *Counting[E]) Deallocate(buf []E) {
	if len(buf) > 0 {
		c.buffers--
	}
	c.base().Deallocate(buf)
}

// Construct delegates to the base allocator unless the failure budget is
// exhausted.
func (c *Counting[E]) Construct(p *E, v E) error {
	if c.FailAfter > 0 && c.built >= c.FailAfter {
		containers.T().Debugf("alloc: injected construction failure after %d elements", c.built)
		return fmt.Errorf("%w: construction budget of %d exhausted", containers.ErrAllocation, c.FailAfter)
	}
	if err := c.base().Construct(p, v); err != nil {
		return err
	}
	c.built++
	c.live++
	return nil
}

// Destroy delegates to the base allocator.
func (c *Counting[E]) Destroy(p *E) {
	c.base().Destroy(p)
	c.live--
}

// Move delegates to the base allocator. Relocation leaves the number of live
// elements unchanged.
func (c *Counting[E]) Move(dst, src *E) {
	c.base().Move(dst, src)
	c.moves++
}

// MaxSize returns Limit if set, the base allocator's maximum otherwise.
func (c *Counting[E]) MaxSize() int {
	if c.Limit > 0 {
		return c.Limit
	}
	return c.base().MaxSize()
}

// Live returns the number of constructed and not yet destroyed elements.
func (c *Counting[E]) Live() int {
	return c.live
}

// Buffers returns the number of non-empty buffers not yet deallocated.
func (c *Counting[E]) Buffers() int {
	return c.buffers
}

// Constructed returns the total number of successful constructions.
func (c *Counting[E]) Constructed() int {
	return c.built
}

// Moves returns the total number of relocations.
func (c *Counting[E]) Moves() int {
	return c.moves
}

// Reset clears the failure budget and the construction total. Live and buffer
// counts are kept.
func (c *Counting[E]) Reset() {
	c.FailAfter = 0
	c.built = 0
}
