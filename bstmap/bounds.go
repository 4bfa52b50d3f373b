package bstmap

// LowerBound returns an iterator to the first entry with a key not less than
// k, or End(). The entries are scanned from the front.
func (m *Map[K, V]) LowerBound(k K) Iterator[K, V] {
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
		if !m.less(it.Key(), k) {
			return it
		}
	}
	return m.End()
}

// UpperBound returns an iterator to the first entry with a key greater than
// k, or End(). The entries are scanned from the back.
func (m *Map[K, V]) UpperBound(k K) Iterator[K, V] {
	for r := m.RBegin(); !r.Equal(m.REnd()); r = r.Next() {
		if !m.less(k, r.Value().First) {
			return r.Base()
		}
	}
	return m.Begin()
}

// EqualRange returns the range of entries with keys equivalent to k, i.e.
// [LowerBound(k), UpperBound(k)). The range is empty or holds one entry.
func (m *Map[K, V]) EqualRange(k K) (Iterator[K, V], Iterator[K, V]) {
	return m.LowerBound(k), m.UpperBound(k)
}
