package bstmap

import "iter"

// ForEach calls fn for every entry in ascending key order, passing a
// reference to the mapped value. Iteration stops early if fn returns false.
// fn must not insert into or erase from m.
func (m *Map[K, V]) ForEach(fn func(key K, value *V) bool) {
	if m == nil || fn == nil {
		return
	}
	for n := m.rend.parent; n != m.end; n = successor(n) {
		if !fn(n.key(), &n.entry().Second) {
			return
		}
	}
}

// All returns an iterator over key/value pairs in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ForEach(func(k K, v *V) bool {
			return yield(k, *v)
		})
	}
}

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.ForEach(func(k K, _ *V) bool {
			return yield(k)
		})
	}
}

// Backward returns an iterator over key/value pairs in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for r := m.RBegin(); !r.Equal(m.REnd()); r = r.Next() {
			if !yield(r.Value().Values()) {
				return
			}
		}
	}
}

// walk visits the nodes of the subtree at n in pre-order, sentinels included.
func walk[K, V any](n *node[K, V], depth int, fn func(n *node[K, V], depth int)) {
	if n == nil {
		return
	}
	fn(n, depth)
	walk(n.left, depth+1, fn)
	walk(n.right, depth+1, fn)
}
