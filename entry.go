package ordmap

// nilIdx marks an absent link. Arena slot 0 is reserved for it, so the
// zero value of every link field (and of a zero OrderedHashMap) is "absent".
const nilIdx int32 = 0

// EntryOf is an immutable snapshot of a map entry.
type EntryOf[K comparable, V any] struct {
	Key   K
	Value V
}

// entry is one arena slot. It carries two independent link pairs:
// bucketPrev/bucketNext thread the collision chain of its bucket,
// orderPrev/orderNext thread the global insertion order.
// A free slot reuses bucketNext as the free list link.
type entry[K comparable, V any] struct {
	key   K
	value V

	bucketPrev int32
	bucketNext int32
	orderPrev  int32
	orderNext  int32

	live bool
}

// alloc returns the index of a fresh unlinked slot holding key and value.
func (m *OrderedHashMap[K, V]) alloc(key K, value V) int32 {
	idx := m.free
	if idx != nilIdx {
		m.free = m.entries[idx].bucketNext
	} else {
		idx = int32(len(m.entries))
		m.entries = append(m.entries, entry[K, V]{})
	}
	m.entries[idx] = entry[K, V]{
		key:        key,
		value:      value,
		bucketPrev: nilIdx,
		bucketNext: nilIdx,
		orderPrev:  nilIdx,
		orderNext:  nilIdx,
		live:       true,
	}
	return idx
}

// release puts an already unlinked slot on the free list. The slot is
// zeroed so that the arena does not retain the removed key and value.
func (m *OrderedHashMap[K, V]) release(idx int32) {
	m.entries[idx] = entry[K, V]{
		bucketPrev: nilIdx,
		bucketNext: m.free,
		orderPrev:  nilIdx,
		orderNext:  nilIdx,
	}
	m.free = idx
}
