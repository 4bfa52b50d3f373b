package bstmap

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/pair"
)

// --- Node storage ----------------------------------------------------------

// newNode allocates a slot and constructs a copy of p into it. On failure
// nothing is left allocated.
func (m *Map[K, V]) newNode(p pair.Pair[K, V]) (*node[K, V], error) {
	slot, err := m.alloc.Allocate(1)
	if err != nil {
		return nil, err
	}
	if err = m.alloc.Construct(&slot[0], p); err != nil {
		m.alloc.Deallocate(slot)
		return nil, err
	}
	return &node[K, V]{slot: slot}, nil
}

// freeNode destroys the entry of n and hands its slot back. Links of n are
// cleared, neighbours are not touched.
func (m *Map[K, V]) freeNode(n *node[K, V]) {
	m.alloc.Destroy(&n.slot[0])
	m.alloc.Deallocate(n.slot)
	n.slot = nil
	n.parent, n.left, n.right = nil, nil, nil
}

// freeSubtree frees all real nodes below and including n, children first.
func (m *Map[K, V]) freeSubtree(n *node[K, V]) {
	if !n.real() {
		return
	}
	m.freeSubtree(n.left)
	m.freeSubtree(n.right)
	m.freeNode(n)
}

// --- Navigation ------------------------------------------------------------

func leftmost[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n. Sentinels take part in the
// walk as ordinary leaves, therefore the successor of the maximum is end and
// the successor of rend is the minimum.
func successor[K, V any](n *node[K, V]) *node[K, V] {
	if n.right != nil {
		return leftmost(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// predecessor returns the in-order predecessor of n.
func predecessor[K, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil {
		return rightmost(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// find returns the node with a key equivalent to k, or nil.
func (m *Map[K, V]) find(k K) *node[K, V] {
	n := m.root
	for n.real() {
		switch {
		case m.less(k, n.key()):
			n = n.left
		case m.less(n.key(), k):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Find returns an iterator to the entry with a key equivalent to k, or End().
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	if n := m.find(k); n != nil {
		return Iterator[K, V]{n: n}
	}
	return m.End()
}

// Count returns 1 if m holds an entry for k, 0 otherwise.
func (m *Map[K, V]) Count(k K) int {
	if m.find(k) != nil {
		return 1
	}
	return 0
}

// At returns a reference to the value mapped to k, or ErrKeyNotFound.
func (m *Map[K, V]) At(k K) (*V, error) {
	if n := m.find(k); n != nil {
		return &n.entry().Second, nil
	}
	return nil, fmt.Errorf("%w: bstmap.At(%v)", containers.ErrKeyNotFound, k)
}

// Ref returns a reference to the value mapped to k, inserting an entry with
// the zero value first if k is not present.
func (m *Map[K, V]) Ref(k K) (*V, error) {
	var zero V
	it, _, err := m.Insert(pair.Make(k, zero))
	if err != nil {
		return nil, err
	}
	return it.Mapped(), nil
}

// --- Insertion -------------------------------------------------------------

// Insert inserts a copy of p if m holds no entry with an equivalent key.
// It returns an iterator to the entry with key p.First and whether an
// insertion took place. Existing entries are never overwritten.
func (m *Map[K, V]) Insert(p pair.Pair[K, V]) (Iterator[K, V], bool, error) {
	if m.root == nil {
		z, err := m.allocNode(p)
		if err != nil {
			return m.End(), false, err
		}
		m.root = z
		z.left, m.rend.parent = m.rend, z
		z.right, m.end.parent = m.end, z
		m.size = 1
		return Iterator[K, V]{n: z}, true, nil
	}
	n := m.root
	for {
		switch {
		case m.less(p.First, n.key()):
			if n.left.real() {
				n = n.left
				continue
			}
			z, err := m.allocNode(p)
			if err != nil {
				return m.End(), false, err
			}
			z.left = n.left
			n.left = z
			m.adopt(z, n)
			return Iterator[K, V]{n: z}, true, nil
		case m.less(n.key(), p.First):
			if n.right.real() {
				n = n.right
				continue
			}
			z, err := m.allocNode(p)
			if err != nil {
				return m.End(), false, err
			}
			z.right = n.right
			n.right = z
			m.adopt(z, n)
			return Iterator[K, V]{n: z}, true, nil
		default:
			return Iterator[K, V]{n: n}, false, nil
		}
	}
}

// allocNode is newNode with a check against MaxSize.
func (m *Map[K, V]) allocNode(p pair.Pair[K, V]) (*node[K, V], error) {
	if m.size >= m.MaxSize() {
		return nil, fmt.Errorf("%w: bstmap holds %d entries, max size is %d",
			containers.ErrLengthExceeded, m.size, m.MaxSize())
	}
	z, err := m.newNode(p)
	if err != nil {
		tracer().Errorf("bstmap: cannot store entry for key %v: %v", p.First, err)
		return nil, err
	}
	return z, nil
}

// adopt links a freshly attached leaf z below parent. z may have inherited a
// sentinel from parent, which is re-parented to z.
func (m *Map[K, V]) adopt(z, parent *node[K, V]) {
	z.parent = parent
	if z.left != nil {
		z.left.parent = z
	}
	if z.right != nil {
		z.right.parent = z
	}
	m.size++
}

// InsertHint inserts p like Insert. The position hint is accepted for
// compatibility and not used.
func (m *Map[K, V]) InsertHint(pos Iterator[K, V], p pair.Pair[K, V]) (Iterator[K, V], error) {
	it, _, err := m.Insert(p)
	return it, err
}

// InsertRange inserts the entries of range [first, last) which have keys not
// yet present in m. On failure, the entries inserted so far remain in m.
func InsertRange[I iterator.Bidirectional[I, pair.Pair[K, V]], K, V any](m *Map[K, V], first, last I) error {
	for it := first; !it.Equal(last); it = it.Next() {
		if _, _, err := m.Insert(it.Value()); err != nil {
			return err
		}
	}
	return nil
}

// --- Erasure ---------------------------------------------------------------

// Erase removes the entry at it and returns an iterator to the following
// entry (or End()). it must refer to an entry of m.
func (m *Map[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	z := it.n
	assert(z.real(), "bstmap: cannot erase a sentinel")
	next := successor(z)
	m.unlink(z)
	m.freeNode(z)
	m.size--
	if m.size == 0 {
		m.reset()
		tracer().Debugf("bstmap: last entry erased")
	}
	return Iterator[K, V]{n: next}
}

// EraseKey removes the entry for k, if present, and returns the number of
// entries removed (0 or 1).
func (m *Map[K, V]) EraseKey(k K) int {
	n := m.find(k)
	if n == nil {
		return 0
	}
	m.Erase(Iterator[K, V]{n: n})
	return 1
}

// EraseRange removes the entries in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	for it := first; !it.Equal(last); {
		it = m.Erase(it)
	}
	return last
}

// unlink detaches z from the tree. The number of real children decides how the
// hole is repaired; sentinels do not count as children but have to be handed
// on to the new extreme node if z was the minimum or maximum.
func (m *Map[K, V]) unlink(z *node[K, V]) {
	l, r := z.left.real(), z.right.real()
	switch {
	case !l && !r:
		if z.left == m.rend && z.right == m.end { // last entry
			return
		}
		var s *node[K, V] // sentinel held by z, if any
		if z.left == m.rend {
			s = m.rend
		} else if z.right == m.end {
			s = m.end
		}
		m.transplant(z, s)
	case l && !r:
		c := z.left
		m.transplant(z, c)
		if z.right == m.end {
			hi := rightmost(c)
			hi.right, m.end.parent = m.end, hi
		}
	case !l && r:
		c := z.right
		m.transplant(z, c)
		if z.left == m.rend {
			lo := leftmost(c)
			lo.left, m.rend.parent = m.rend, lo
		}
	default:
		s := leftmost(z.right)
		if s != z.right {
			s.parent.left = s.right
			if s.right != nil {
				s.right.parent = s.parent
			}
			s.right = z.right
			s.right.parent = s
		}
		m.transplant(z, s)
		s.left = z.left
		s.left.parent = s
	}
}

// transplant puts v into the place of u below u's parent.
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}
