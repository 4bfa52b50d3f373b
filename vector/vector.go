package vector

import (
	"fmt"
	"strings"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/iterator"
)

// Vector is a dynamic array of elements of type T.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid, empty object using the heap allocator.
type Vector[T any] struct {
	alloc alloc.Allocator[T]
	start []T // the whole allocation: len(start) == capacity
	size  int
}

// New creates an empty vector with validated configuration. No storage is
// allocated until the first insertion or reservation.
func New[T any](cfg Config[T]) (*Vector[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Vector[T]{alloc: cfg.Allocator}, nil
}

// NewFill creates a vector of n copies of v, with capacity n.
func NewFill[T any](n int, v T, cfg Config[T]) (*Vector[T], error) {
	vec, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = vec.Assign(n, v); err != nil {
		return nil, err
	}
	return vec, nil
}

// FromSlice creates a vector holding copies of the elements of s, in order.
func FromSlice[T any](s []T, cfg Config[T]) (*Vector[T], error) {
	vec, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = vec.AssignSlice(s); err != nil {
		return nil, err
	}
	return vec, nil
}

// NewRange creates a vector from the elements of the range [first, last) of
// any bidirectional iterator.
func NewRange[I iterator.Bidirectional[I, T], T any](first, last I, cfg Config[T]) (*Vector[T], error) {
	return FromSlice(collect[I, T](first, last), cfg)
}

// Of creates a heap-allocated vector from a list of values.
func Of[T any](values ...T) *Vector[T] {
	vec, err := FromSlice(values, Config[T]{})
	assert(err == nil, "vector.Of: heap allocator failed")
	return vec
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.Heap[T]{}
	}
	return v.alloc
}

// Allocator returns the allocator of v.
func (v *Vector[T]) Allocator() alloc.Allocator[T] {
	return v.allocator()
}

// Size returns the number of elements in v.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements v can hold before the next
// reallocation.
func (v *Vector[T]) Capacity() int {
	return len(v.start)
}

// Empty reports whether v has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxSize returns the maximum number of elements the allocator of v is able to
// provide storage for.
func (v *Vector[T]) MaxSize() int {
	return v.allocator().MaxSize()
}

// Reserve makes sure v is able to hold n elements without reallocation.
//
// If n exceeds the capacity, a new buffer of exactly n slots is allocated, the
// elements are copied over in index order and the old buffer is released. All
// iterators are invalidated in this case. Otherwise Reserve is a no-op.
//
// Reserve returns ErrLengthExceeded if n is beyond MaxSize. If construction
// fails midway, v is left unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: vector.Reserve(%d), max size is %d",
			containers.ErrLengthExceeded, n, v.MaxSize())
	}
	if n <= v.Capacity() {
		return nil
	}
	return v.reallocate(n)
}

// reallocate moves all elements to a new buffer of n slots.
// Partially constructed buffers are unwound before the error is returned.
func (v *Vector[T]) reallocate(n int) error {
	return v.reallocateInsert(n, v.size, 0, nil)
}

// reallocateInsert moves all elements to a new buffer of n slots, with k new
// elements value(0) … value(k-1) placed at index. The new elements are
// constructed first, then the old ones are copied around them. v is changed
// only if every construction succeeded; otherwise the new buffer is unwound
// and returned to the allocator.
func (v *Vector[T]) reallocateInsert(n, index, k int, value func(int) T) error {
	assert(n >= v.size+k, "reallocate would drop elements")
	a := v.allocator()
	buf, err := a.Allocate(n)
	if err != nil {
		tracer().Errorf("vector: cannot allocate %d slots: %v", n, err)
		return err
	}
	if err = constructWith(a, buf[index:index+k], value); err != nil {
		a.Deallocate(buf)
		tracer().Errorf("vector: reallocation to %d slots failed: %v", n, err)
		return err
	}
	if err = constructAll(a, buf, v.start[:index]); err != nil {
		destroyRange(a, buf[index:index+k])
		a.Deallocate(buf)
		tracer().Errorf("vector: reallocation to %d slots failed: %v", n, err)
		return err
	}
	if err = constructAll(a, buf[index+k:], v.start[index:v.size]); err != nil {
		destroyRange(a, buf[:index+k])
		a.Deallocate(buf)
		tracer().Errorf("vector: reallocation to %d slots failed: %v", n, err)
		return err
	}
	tracer().Debugf("vector: reallocated from capacity %d to %d", len(v.start), n)
	v.release()
	v.start = buf
	v.size += k
	return nil
}

// growth returns the capacity needed to hold need elements, following the
// doubling policy: the new capacity is max(1, 2·capacity), raised to need if
// that is not enough. It returns 0 if the current capacity suffices.
func (v *Vector[T]) growth(need int) (int, error) {
	capacity := v.Capacity()
	if need <= capacity {
		return 0, nil
	}
	limit := v.MaxSize()
	if need > limit {
		return 0, fmt.Errorf("%w: vector needs %d elements, max size is %d",
			containers.ErrLengthExceeded, need, limit)
	}
	newcap := 1
	if capacity > 0 {
		newcap = capacity * 2
		if capacity > limit/2 {
			newcap = limit
		}
	}
	if newcap < need {
		newcap = need
	}
	return newcap, nil
}

// Release destroys all elements and frees the storage of v, leaving an empty
// vector with capacity 0.
func (v *Vector[T]) Release() {
	v.release()
	v.start = nil
	v.size = 0
}

// Clone returns a deep copy of v. The copy shares the allocator of v and has a
// capacity equal to the size of v.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.allocator()}
	if v.size == 0 {
		return c, nil
	}
	if err := c.copyElements(v, v.size); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the content of v by a deep copy of other, with the
// capacity of other. v keeps its own allocator.
//
// The copy is built before the old storage is released; on failure v is
// unchanged.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp := &Vector[T]{alloc: v.allocator()}
	if err := tmp.copyElements(other, other.Capacity()); err != nil {
		return err
	}
	v.Release()
	v.start, v.size = tmp.start, tmp.size
	return nil
}

// copyElements copy-constructs all elements of src into a fresh buffer of
// capacity slots. v must be empty.
func (v *Vector[T]) copyElements(src *Vector[T], capacity int) error {
	assert(v.size == 0 && len(v.start) == 0, "copyElements requires an empty vector")
	if capacity == 0 {
		return nil
	}
	a := v.allocator()
	buf, err := a.Allocate(capacity)
	if err != nil {
		return err
	}
	if err = constructAll(a, buf, src.start[:src.size]); err != nil {
		a.Deallocate(buf)
		return err
	}
	v.start, v.size = buf, src.size
	return nil
}

// Swap exchanges the contents of v and other, including their allocators.
// No elements are moved; iterators stay valid and refer to the other vector
// afterwards.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.start, other.start = other.start, v.start
	v.size, other.size = other.size, v.size
}

// Slice returns a copy of the elements of v.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.size)
	copy(out, v.start[:v.size])
	return out
}

func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v.start[i])
	}
	b.WriteByte(']')
	return b.String()
}

func collect[I iterator.Bidirectional[I, T], T any](first, last I) []T {
	var values []T
	for value := range iterator.Seq[I, T](first, last) {
		values = append(values, value)
	}
	return values
}
