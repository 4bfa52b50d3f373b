package vector

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/containers"
)

// Check validates the storage invariants of v:
// 0 ≤ size ≤ capacity, and every reserved slot past size is uninitialized
// (holds the zero value).
//
// This checker walks the whole buffer and is meant to be used in tests.
func (v *Vector[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", containers.ErrIllegalArguments)
	}
	if v.size < 0 {
		return fmt.Errorf("%w: negative size %d", containers.ErrIllegalArguments, v.size)
	}
	if v.size > len(v.start) {
		return fmt.Errorf("%w: size %d exceeds capacity %d", containers.ErrIllegalArguments,
			v.size, len(v.start))
	}
	for i := v.size; i < len(v.start); i++ {
		if !reflect.ValueOf(&v.start[i]).Elem().IsZero() {
			return fmt.Errorf("%w: reserved slot %d is not uninitialized", containers.ErrIllegalArguments, i)
		}
	}
	return nil
}
