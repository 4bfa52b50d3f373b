package bstmap

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/pair"
)

// node is a tree node. Child links own their subtrees, the parent link is a
// back-reference. Sentinels have no slot.
type node[K, V any] struct {
	parent, left, right *node[K, V]
	slot                []pair.Pair[K, V] // one-element buffer from the allocator
}

// real reports whether n is a node carrying an entry, i.e. neither nil nor a
// sentinel.
func (n *node[K, V]) real() bool {
	return n != nil && n.slot != nil
}

func (n *node[K, V]) entry() *pair.Pair[K, V] {
	return &n.slot[0]
}

func (n *node[K, V]) key() K {
	return n.slot[0].First
}

// Map is an ordered map from keys K to values V, with unique keys.
// Maps have to be created with New or NewOrdered.
type Map[K, V any] struct {
	less  LessFunc[K]
	alloc alloc.Allocator[pair.Pair[K, V]]
	root  *node[K, V]
	end   *node[K, V] // past-the-end sentinel, right child of the maximum
	rend  *node[K, V] // before-the-beginning sentinel, left child of the minimum
	size  int
}

// New creates an empty map with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return newMap(cfg.Less, cfg.Allocator), nil
}

// NewOrdered creates an empty map for keys with a natural order, using the heap
// allocator.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	return newMap(func(a, b K) bool { return a < b }, alloc.Heap[pair.Pair[K, V]]{})
}

// NewRange creates a map from the entries of range [first, last). Entries
// with keys equivalent to an earlier entry of the range are skipped.
func NewRange[I iterator.Bidirectional[I, pair.Pair[K, V]], K, V any](first, last I,
	cfg Config[K, V]) (*Map[K, V], error) {
	//
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = InsertRange(m, first, last); err != nil {
		m.Clear()
		return nil, err
	}
	return m, nil
}

func newMap[K, V any](less LessFunc[K], a alloc.Allocator[pair.Pair[K, V]]) *Map[K, V] {
	m := &Map[K, V]{
		less:  less,
		alloc: a,
		end:   &node[K, V]{},
		rend:  &node[K, V]{},
	}
	m.reset()
	return m
}

// reset establishes the wiring of an empty tree: no root, rend parked below
// end. It does not free any nodes.
func (m *Map[K, V]) reset() {
	m.root = nil
	m.size = 0
	m.end.parent, m.end.left, m.end.right = nil, nil, nil
	m.rend.parent, m.rend.left, m.rend.right = m.end, nil, nil
}

// Size returns the number of entries in m.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty reports whether m has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// MaxSize returns the maximum number of entries the allocator of m is able to
// provide storage for.
func (m *Map[K, V]) MaxSize() int {
	return m.alloc.MaxSize()
}

// Allocator returns the allocator of m.
func (m *Map[K, V]) Allocator() alloc.Allocator[pair.Pair[K, V]] {
	return m.alloc
}

// KeyComp returns the key ordering of m.
func (m *Map[K, V]) KeyComp() LessFunc[K] {
	return m.less
}

// ValueComp returns an ordering of entries which compares keys only.
func (m *Map[K, V]) ValueComp() func(a, b pair.Pair[K, V]) bool {
	less := m.less
	return func(a, b pair.Pair[K, V]) bool {
		return less(a.First, b.First)
	}
}

// Begin returns an iterator to the entry with the smallest key, or End() if
// m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{n: m.rend.parent}
}

// End returns an iterator to the past-the-end sentinel. It must not be
// dereferenced.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{n: m.end}
}

// RBegin returns a reverse iterator to the entry with the largest key.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return iterator.MakeReverse[Iterator[K, V], pair.Pair[K, V]](m.End())
}

// REnd returns a reverse iterator to the position before the smallest key.
// It must not be dereferenced.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return iterator.MakeReverse[Iterator[K, V], pair.Pair[K, V]](m.Begin())
}

// Clone returns a deep copy of m. The copy has the same shape as m and shares
// its ordering and allocator.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	c := newMap(m.less, m.alloc)
	if err := c.copyTree(m); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the content of m by a deep copy of other, adopting the key
// ordering of other. m keeps its own allocator.
//
// The copy is built before the old entries are erased; on failure m is
// unchanged.
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) error {
	if m == other {
		return nil
	}
	tmp := newMap(other.less, m.alloc)
	if err := tmp.copyTree(other); err != nil {
		return err
	}
	m.Clear()
	m.Swap(tmp)
	return nil
}

// copyTree rebuilds the tree of src in m, which must be empty.
func (m *Map[K, V]) copyTree(src *Map[K, V]) error {
	assert(m.root == nil, "copyTree requires an empty map")
	if src.root == nil {
		return nil
	}
	root, err := m.copySubtree(src, src.root, nil)
	if err != nil {
		m.reset()
		tracer().Errorf("bstmap: copy of %d entries failed: %v", src.size, err)
		return err
	}
	m.root, m.size = root, src.size
	return nil
}

func (m *Map[K, V]) copySubtree(src *Map[K, V], n, parent *node[K, V]) (*node[K, V], error) {
	switch n {
	case nil:
		return nil, nil
	case src.end:
		m.end.parent = parent
		return m.end, nil
	case src.rend:
		m.rend.parent = parent
		return m.rend, nil
	}
	z, err := m.newNode(*n.entry())
	if err != nil {
		return nil, err
	}
	z.parent = parent
	if z.left, err = m.copySubtree(src, n.left, z); err == nil {
		z.right, err = m.copySubtree(src, n.right, z)
	}
	if err != nil {
		m.freeSubtree(z)
		return nil, err
	}
	return z, nil
}

// Swap exchanges the contents of m and other, including orderings and
// allocators. Iterators stay valid and refer to the other map afterwards.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	*m, *other = *other, *m
}

// Clear erases all entries.
func (m *Map[K, V]) Clear() {
	m.EraseRange(m.Begin(), m.End())
}
