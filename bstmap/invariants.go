package bstmap

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Check validates structural tree invariants: parent links, sentinel wiring,
// key order and size.
//
// This checker walks the whole tree and should be used in tests.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", containers.ErrIllegalArguments)
	}
	if m.less == nil || m.alloc == nil {
		return fmt.Errorf("%w: map not created with New", containers.ErrIllegalArguments)
	}
	if m.end == nil || m.rend == nil || m.end.slot != nil || m.rend.slot != nil {
		return fmt.Errorf("%w: sentinels missing or carrying entries", containers.ErrIllegalArguments)
	}
	if m.end.left != nil || m.end.right != nil || m.rend.left != nil || m.rend.right != nil {
		return fmt.Errorf("%w: sentinels must be leaves", containers.ErrIllegalArguments)
	}
	if m.root == nil {
		if m.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", containers.ErrIllegalArguments, m.size)
		}
		if m.rend.parent != m.end || m.end.parent != nil {
			return fmt.Errorf("%w: empty tree must park rend below end", containers.ErrIllegalArguments)
		}
		return nil
	}
	if !m.root.real() || m.root.parent != nil {
		return fmt.Errorf("%w: root must be a parentless entry node", containers.ErrIllegalArguments)
	}
	count, err := m.checkNode(m.root)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", containers.ErrIllegalArguments, count, m.size)
	}
	if hi := m.end.parent; !hi.real() || hi.right != m.end || rightmost(m.root) != m.end {
		return fmt.Errorf("%w: end is not the right child of the maximum", containers.ErrIllegalArguments)
	}
	if lo := m.rend.parent; !lo.real() || lo.left != m.rend || leftmost(m.root) != m.rend {
		return fmt.Errorf("%w: rend is not the left child of the minimum", containers.ErrIllegalArguments)
	}
	return m.checkOrder()
}

// checkNode checks the parent links below n and returns the number of entry
// nodes in its subtree.
func (m *Map[K, V]) checkNode(n *node[K, V]) (int, error) {
	count := 1
	for _, child := range [2]*node[K, V]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below %v", containers.ErrIllegalArguments, n.key())
		}
		if !child.real() {
			if child != m.end && child != m.rend {
				return 0, fmt.Errorf("%w: foreign sentinel below %v", containers.ErrIllegalArguments, n.key())
			}
			continue
		}
		c, err := m.checkNode(child)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}

// checkOrder checks that an in-order walk from Begin to End yields strictly
// increasing keys and that walking back from End reaches rend.
func (m *Map[K, V]) checkOrder() error {
	var prev *node[K, V]
	steps := 0
	for n := m.rend.parent; n != m.end; n = successor(n) {
		if !n.real() {
			return fmt.Errorf("%w: in-order walk hit a non-entry node", containers.ErrIllegalArguments)
		}
		if prev != nil && !m.less(prev.key(), n.key()) {
			return fmt.Errorf("%w: keys out of order at %v", containers.ErrIllegalArguments, n.key())
		}
		if steps++; steps > m.size {
			return fmt.Errorf("%w: in-order walk does not terminate", containers.ErrIllegalArguments)
		}
		prev = n
	}
	n := m.end
	for i := 0; i < m.size && n != nil; i++ {
		n = predecessor(n)
	}
	if n == nil {
		return fmt.Errorf("%w: backward walk left the tree", containers.ErrIllegalArguments)
	}
	if predecessor(n) != m.rend {
		return fmt.Errorf("%w: backward walk does not reach rend", containers.ErrIllegalArguments)
	}
	return nil
}
