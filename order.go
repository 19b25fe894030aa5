package ordmap

// Global insertion order list.
//
// head and tail are nilIdx iff the map is empty. New entries are always
// appended at the tail; updating an existing key never moves it.

func (m *OrderedHashMap[K, V]) orderAppend(idx int32) {
	e := &m.entries[idx]
	e.orderNext = nilIdx
	e.orderPrev = m.tail
	if m.tail == nilIdx {
		m.head = idx
	} else {
		m.entries[m.tail].orderNext = idx
	}
	m.tail = idx
}

// orderUnlink splices idx out of the order list, relinking both
// neighbors.
func (m *OrderedHashMap[K, V]) orderUnlink(idx int32) {
	e := &m.entries[idx]
	prev, next := e.orderPrev, e.orderNext
	if prev == nilIdx {
		m.head = next
	} else {
		m.entries[prev].orderNext = next
	}
	if next == nilIdx {
		m.tail = prev
	} else {
		m.entries[next].orderPrev = prev
	}
	e.orderPrev, e.orderNext = nilIdx, nilIdx
}

// Collision chains.
//
// Chain order inside a bucket is insertion order, not hash order.

func (m *OrderedHashMap[K, V]) chainAppend(bidx int, idx int32) {
	e := &m.entries[idx]
	e.bucketNext = nilIdx
	e.bucketPrev = nilIdx
	cur := m.buckets[bidx]
	if cur == nilIdx {
		m.buckets[bidx] = idx
		return
	}
	for m.entries[cur].bucketNext != nilIdx {
		cur = m.entries[cur].bucketNext
	}
	m.entries[cur].bucketNext = idx
	e.bucketPrev = cur
}

// chainUnlink splices idx out of its bucket chain. Both the forward link
// of the previous entry and the back link of the next entry are repaired.
func (m *OrderedHashMap[K, V]) chainUnlink(bidx int, idx int32) {
	e := &m.entries[idx]
	prev, next := e.bucketPrev, e.bucketNext
	if prev == nilIdx {
		m.buckets[bidx] = next
	} else {
		m.entries[prev].bucketNext = next
	}
	if next != nilIdx {
		m.entries[next].bucketPrev = prev
	}
	e.bucketPrev, e.bucketNext = nilIdx, nilIdx
}
