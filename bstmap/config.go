package bstmap

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/pair"
)

// LessFunc is a strict weak ordering on keys.
type LessFunc[K any] func(a, b K) bool

// Config configures an ordered map.
type Config[K, V any] struct {
	// Less orders the keys. It is required.
	Less LessFunc[K]
	// Allocator provides storage for entries; defaults to alloc.Heap.
	Allocator alloc.Allocator[pair.Pair[K, V]]
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap[pair.Pair[K, V]]{}
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: key ordering is required", containers.ErrIllegalArguments)
	}
	if cfg.Allocator.MaxSize() <= 0 {
		return fmt.Errorf("%w: allocator is unable to hold any entry", containers.ErrIllegalArguments)
	}
	return nil
}
