package vector

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
)

// Config configures a vector.
type Config[T any] struct {
	// Allocator is the memory-resource strategy; defaults to alloc.Heap.
	Allocator alloc.Allocator[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap[T]{}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Allocator.MaxSize() <= 0 {
		return fmt.Errorf("%w: allocator is unable to hold any element", containers.ErrIllegalArguments)
	}
	return nil
}
