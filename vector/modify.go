package vector

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/iterator"
)

// PushBack appends a copy of value, growing the capacity to
// max(1, 2·capacity) if v is full. Amortized O(1).
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.insertWith(v.size, 1, func(int) T { return value })
	return err
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	v.allocator().Destroy(&v.start[v.size-1])
	v.size--
}

// Insert inserts a copy of value before pos and returns an iterator to the
// inserted element.
func (v *Vector[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	return v.InsertN(pos, 1, value)
}

// InsertN inserts n copies of value before pos and returns an iterator to the
// first inserted element (or to pos, if n is 0).
//
// Elements at and after pos are shifted right by n. If this exceeds the
// capacity, v is reallocated first and all iterators are invalidated;
// otherwise iterators at or after pos are invalidated. On failure the content
// of v is unchanged.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, value T) (Iterator[T], error) {
	index := pos.Sub(v.Begin())
	if n < 0 {
		return pos, fmt.Errorf("%w: cannot insert %d elements", containers.ErrIllegalArguments, n)
	}
	if n == 0 {
		return v.iter(index), nil
	}
	return v.insertWith(index, n, func(int) T { return value })
}

// InsertSlice inserts copies of values before pos, in order, and returns an
// iterator to the first inserted element.
func (v *Vector[T]) InsertSlice(pos Iterator[T], values []T) (Iterator[T], error) {
	index := pos.Sub(v.Begin())
	if len(values) == 0 {
		return v.iter(index), nil
	}
	return v.insertWith(index, len(values), func(i int) T { return values[i] })
}

// InsertRange inserts the elements of range [first, last) before pos. The range
// may be part of v itself.
func InsertRange[I iterator.Bidirectional[I, T], T any](v *Vector[T], pos Iterator[T], first, last I) (Iterator[T], error) {
	return v.InsertSlice(pos, collect[I, T](first, last))
}

// insertWith opens a gap of n slots at index and constructs value(0) … value(n-1)
// into it. Failures are unwound: new elements are destroyed and the gap is
// closed again. If v has to grow, the new elements go directly into the new
// buffer, so a failure leaves the old buffer and its capacity in place.
func (v *Vector[T]) insertWith(index, n int, value func(int) T) (Iterator[T], error) {
	assert(index >= 0 && index <= v.size, "vector insert position out of range")
	newcap, err := v.growth(v.size + n)
	if err != nil {
		return v.iter(index), err
	}
	if newcap > 0 {
		err = v.reallocateInsert(newcap, index, n, value)
		return v.iter(index), err
	}
	a := v.allocator()
	v.openGap(index, n)
	for i := 0; i < n; i++ {
		if err := a.Construct(&v.start[index+i], value(i)); err != nil {
			destroyRange(a, v.start[index:index+i])
			v.closeGap(index, n)
			return v.iter(index), err
		}
	}
	v.size += n
	return v.iter(index), nil
}

// openGap shifts elements [index, size) right by n slots, back to front, so
// that source and destination ranges never overlap in a live slot.
func (v *Vector[T]) openGap(index, n int) {
	a := v.allocator()
	for src := v.size - 1; src >= index; src-- {
		a.Move(&v.start[src+n], &v.start[src])
	}
}

// closeGap reverts openGap.
func (v *Vector[T]) closeGap(index, n int) {
	a := v.allocator()
	for src := index + n; src < v.size+n; src++ {
		a.Move(&v.start[src-n], &v.start[src])
	}
}

// Erase removes the element at pos and returns an iterator to the element
// which followed it (or End()).
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements in [first, last) and returns an iterator to
// the element which followed the range (or End()). Iterators at or after first
// are invalidated.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	i, j := first.Sub(v.Begin()), last.Sub(v.Begin())
	if i == j {
		return v.iter(i)
	}
	assert(i >= 0 && i < j && j <= v.size, "vector erase range out of range")
	a := v.allocator()
	for k := i; k < j; k++ {
		a.Destroy(&v.start[k])
	}
	n := j - i
	for k := j; k < v.size; k++ {
		a.Move(&v.start[k-n], &v.start[k])
	}
	v.size -= n
	return v.iter(i)
}

// Clear destroys all elements. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	a := v.allocator()
	for i := 0; i < v.size; i++ {
		a.Destroy(&v.start[i])
	}
	v.size = 0
}

// Resize changes the number of elements to n. Surplus elements are destroyed;
// missing ones are constructed as copies of value. Growing beyond the capacity
// follows the doubling policy of PushBack.
func (v *Vector[T]) Resize(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot resize to %d elements", containers.ErrIllegalArguments, n)
	}
	for v.size > n {
		v.PopBack()
	}
	if n == v.size {
		return nil
	}
	_, err := v.insertWith(v.size, n-v.size, func(int) T { return value })
	return err
}

// Assign replaces the content of v by n copies of value. The capacity grows
// to exactly n if it is too small.
//
// Old elements are destroyed before new ones are constructed. On failure, v
// is left empty.
func (v *Vector[T]) Assign(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot assign %d elements", containers.ErrIllegalArguments, n)
	}
	v.Clear()
	if err := v.Reserve(n); err != nil {
		return err
	}
	a := v.allocator()
	for i := 0; i < n; i++ {
		if err := a.Construct(&v.start[i], value); err != nil {
			destroyRange(a, v.start[:i])
			return err
		}
	}
	v.size = n
	return nil
}

// AssignSlice replaces the content of v by copies of values. On failure, v is
// left with the elements constructed so far.
func (v *Vector[T]) AssignSlice(values []T) error {
	v.Clear()
	if err := v.Reserve(len(values)); err != nil {
		return err
	}
	for _, value := range values {
		if err := v.PushBack(value); err != nil {
			return err
		}
	}
	return nil
}

// AssignRange replaces the content of v by the elements of range
// [first, last). The range may be part of v itself.
func AssignRange[I iterator.Bidirectional[I, T], T any](v *Vector[T], first, last I) error {
	return v.AssignSlice(collect[I, T](first, last))
}

// constructAll copy-constructs src into the leading slots of dst. On failure,
// the elements constructed so far are destroyed again.
func constructAll[T any](a alloc.Allocator[T], dst, src []T) error {
	for i := range src {
		if err := a.Construct(&dst[i], src[i]); err != nil {
			destroyRange(a, dst[:i])
			return err
		}
	}
	return nil
}

// constructWith constructs value(i) into dst[i] for every slot of dst. On
// failure, the elements constructed so far are destroyed again.
func constructWith[T any](a alloc.Allocator[T], dst []T, value func(int) T) error {
	for i := range dst {
		if err := a.Construct(&dst[i], value(i)); err != nil {
			destroyRange(a, dst[:i])
			return err
		}
	}
	return nil
}

// destroyRange destroys the elements of s, back to front.
func destroyRange[T any](a alloc.Allocator[T], s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		a.Destroy(&s[i])
	}
}
