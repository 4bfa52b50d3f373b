package iterator

// Reverse adapts a bidirectional iterator to step in the opposite direction.
//
// A reverse iterator refers to the element right before the position of its
// base iterator:
//
//	rev.Value() == rev.Base().Prev().Value()
//
// This makes the reverse of end() the last element, and the reverse of
// begin() the position one before the first element.
type Reverse[I Bidirectional[I, V], V any] struct {
	base I
}

// MakeReverse wraps base into a reverse iterator.
func MakeReverse[I Bidirectional[I, V], V any](base I) Reverse[I, V] {
	return Reverse[I, V]{base: base}
}

// Base returns the underlying iterator, which refers to the element after the
// one this reverse iterator dereferences to.
func (r Reverse[I, V]) Base() I {
	return r.base
}

// Value returns the element before the base position.
func (r Reverse[I, V]) Value() V {
	return r.base.Prev().Value()
}

// Next moves towards the beginning of the container.
func (r Reverse[I, V]) Next() Reverse[I, V] {
	return Reverse[I, V]{base: r.base.Prev()}
}

// Prev moves towards the end of the container.
func (r Reverse[I, V]) Prev() Reverse[I, V] {
	return Reverse[I, V]{base: r.base.Next()}
}

// Equal reports whether both reverse iterators wrap equal base iterators.
func (r Reverse[I, V]) Equal(other Reverse[I, V]) bool {
	return r.base.Equal(other.base)
}

// Add moves the reverse iterator by n positions towards the beginning of the
// container. It is O(1) whenever the base iterator supports random access.
func (r Reverse[I, V]) Add(n int) Reverse[I, V] {
	return Reverse[I, V]{base: Advance[I, V](r.base, -n)}
}

// Sub returns the number of steps from other to r.
func (r Reverse[I, V]) Sub(other Reverse[I, V]) int {
	return Distance[I, V](r.base, other.base)
}

// Less reports whether r is positioned before other in reverse order.
// The base iterator has to support random access.
func (r Reverse[I, V]) Less(other Reverse[I, V]) bool {
	ra, ok := any(other.base).(interface{ Less(I) bool })
	if !ok {
		panic("iterator: Less on reverse iterator requires random-access base")
	}
	return ra.Less(r.base)
}
