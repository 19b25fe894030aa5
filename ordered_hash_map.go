package ordmap

import (
	"math/rand/v2"
	"unsafe"
)

// defaultBucketCount is the number of buckets used when WithBucketCount
// is not given. The table never grows: long chains degrade lookups to
// linear scans.
const defaultBucketCount = 16

// OrderedHashMap is a hash map that iterates in insertion order.
//
// Keys are routed to a fixed number of buckets; colliding keys are chained
// inside their bucket. Every entry is additionally threaded on a global
// doubly-linked list that records insertion order, so Keys, Values,
// Entries and Range report entries in the order their keys were first
// inserted. Updating the value of an existing key keeps its position;
// removing a key and inserting it again moves it to the end.
//
// Entries live in an index-addressed arena; links are arena indices, not
// pointers.
//
// The zero value is an empty map ready to use. An OrderedHashMap must not
// be copied after first use and is not safe for concurrent use. Wrap it in
// a Locked when several goroutines share it.
type OrderedHashMap[K comparable, V any] struct {
	buckets []int32
	entries []entry[K, V]
	head    int32
	tail    int32
	free    int32
	size    int

	seed     uintptr
	keyHash  hashFunc
	valEqual equalFunc

	bucketCount int // WithBucketCount
	sizeHint    int // WithPresize
}

// MapConfig defines configurable OrderedHashMap options.
type MapConfig struct {
	bucketCount int
	sizeHint    int
}

// WithBucketCount fixes the number of buckets. The count is chosen once
// at construction and never changes afterwards. Values below 1 are
// ignored.
func WithBucketCount(n int) func(*MapConfig) {
	return func(c *MapConfig) {
		if n >= 1 {
			c.bucketCount = n
		}
	}
}

// WithPresize reserves arena capacity for sizeHint entries. It does not
// change the bucket count. If sizeHint is zero or negative, the value is
// ignored.
func WithPresize(sizeHint int) func(*MapConfig) {
	return func(c *MapConfig) {
		if sizeHint > 0 {
			c.sizeHint = sizeHint
		}
	}
}

// New creates a new OrderedHashMap. Direct initialization is also supported.
//
// Parameters:
//   - WithBucketCount option for the fixed bucket count (default 16)
//   - WithPresize option for initial arena capacity
func New[K comparable, V any](options ...func(*MapConfig)) *OrderedHashMap[K, V] {
	return NewWithHasher[K, V](nil, nil, options...)
}

// NewWithHasher creates an OrderedHashMap with custom hashing and value
// equality functions.
//
// Parameters:
//   - keyHash: nil uses the built-in hasher
//   - valEqual: nil uses the built-in comparison; if V is not comparable,
//     ContainsValue panics unless valEqual is given
//   - options: WithBucketCount, WithPresize
func NewWithHasher[K comparable, V any](
	keyHash func(key K, seed uintptr) uintptr,
	valEqual func(val, val2 V) bool,
	options ...func(*MapConfig),
) *OrderedHashMap[K, V] {
	var hs hashFunc
	var eq equalFunc
	if keyHash != nil {
		hs = func(p unsafe.Pointer, seed uintptr) uintptr {
			return keyHash(*(*K)(p), seed)
		}
	}
	if valEqual != nil {
		eq = func(a, b unsafe.Pointer) bool {
			return valEqual(*(*V)(a), *(*V)(b))
		}
	}
	m := &OrderedHashMap[K, V]{}
	m.init(hs, eq, options...)
	return m
}

func (m *OrderedHashMap[K, V]) init(hs hashFunc, eq equalFunc, options ...func(*MapConfig)) {
	c := &MapConfig{bucketCount: defaultBucketCount}
	for _, o := range options {
		o(c)
	}

	m.seed = uintptr(rand.Uint64())
	m.keyHash, m.valEqual = defaultHasher[K, V]()
	if hs != nil {
		m.keyHash = hs
	}
	if eq != nil {
		m.valEqual = eq
	}
	m.bucketCount = c.bucketCount
	m.sizeHint = c.sizeHint
	m.reset()
}

// reset drops all entries and allocates empty buckets and arena.
func (m *OrderedHashMap[K, V]) reset() {
	m.buckets = make([]int32, m.bucketCount)
	m.entries = make([]entry[K, V], 1, m.sizeHint+1)
	m.head, m.tail, m.free = nilIdx, nilIdx, nilIdx
	m.size = 0
}

// lazyInit prepares a zero value map on its first mutation.
func (m *OrderedHashMap[K, V]) lazyInit() {
	if m.buckets == nil {
		m.init(nil, nil)
	}
}

func (m *OrderedHashMap[K, V]) hashOf(key *K) uintptr {
	return m.keyHash(noescape(unsafe.Pointer(key)), m.seed)
}

// find returns the bucket of key and the arena index of its entry, or
// nilIdx when the key is absent. The map must be initialized.
func (m *OrderedHashMap[K, V]) find(key K) (bidx int, idx int32) {
	bidx = bucketIndex(m.hashOf(&key), len(m.buckets))
	for idx = m.buckets[bidx]; idx != nilIdx; idx = m.entries[idx].bucketNext {
		if m.entries[idx].key == key {
			return bidx, idx
		}
	}
	return bidx, nilIdx
}

// lookup is find for read-only callers; it tolerates the zero value.
func (m *OrderedHashMap[K, V]) lookup(key K) int32 {
	if m.buckets == nil {
		return nilIdx
	}
	_, idx := m.find(key)
	return idx
}

// insert links a new entry at the tail of bucket bidx and of the order
// list. Both links are set before the call returns.
func (m *OrderedHashMap[K, V]) insert(bidx int, key K, value V) {
	idx := m.alloc(key, value)
	m.chainAppend(bidx, idx)
	m.orderAppend(idx)
	m.size++
}

// Size returns the number of key-value pairs in the map.
// This is an O(1) operation.
func (m *OrderedHashMap[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *OrderedHashMap[K, V]) IsEmpty() bool {
	return m.head == nilIdx
}

// ContainsKey reports whether key is present.
func (m *OrderedHashMap[K, V]) ContainsKey(key K) bool {
	return m.lookup(key) != nilIdx
}

// ContainsValue reports whether any entry holds value. It scans every
// entry in insertion order.
//
// ContainsValue panics if V is not comparable and the map was created
// without a valEqual function.
func (m *OrderedHashMap[K, V]) ContainsValue(value V) bool {
	if m.head == nilIdx {
		return false
	}
	if m.valEqual == nil {
		panic("ordmap: ContainsValue on a non-comparable value type without valEqual")
	}
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		if m.valEqual(noescape(unsafe.Pointer(&m.entries[idx].value)), noescape(unsafe.Pointer(&value))) {
			return true
		}
	}
	return false
}

// Get returns the value stored for key.
// The ok result reports whether the key was found.
func (m *OrderedHashMap[K, V]) Get(key K) (value V, ok bool) {
	if idx := m.lookup(key); idx != nilIdx {
		return m.entries[idx].value, true
	}
	return
}

// GetOrDefault returns the value stored for key, or defaultValue when the
// key is absent. The map is never modified.
func (m *OrderedHashMap[K, V]) GetOrDefault(key K, defaultValue V) V {
	if idx := m.lookup(key); idx != nilIdx {
		return m.entries[idx].value
	}
	return defaultValue
}

// Put sets the value for key.
//
// A new key is appended to the end of the iteration order. For an existing
// key the value is replaced in place, the position is unchanged and the
// previous value is returned with loaded set to true.
func (m *OrderedHashMap[K, V]) Put(key K, value V) (previous V, loaded bool) {
	m.lazyInit()
	bidx, idx := m.find(key)
	if idx != nilIdx {
		e := &m.entries[idx]
		previous, e.value = e.value, value
		return previous, true
	}
	m.insert(bidx, key, value)
	return
}

// PutIfAbsent stores value only when key is absent.
// If the key is present the map is unchanged, and the existing value is
// returned with loaded set to true. Otherwise value is stored and returned.
func (m *OrderedHashMap[K, V]) PutIfAbsent(key K, value V) (actual V, loaded bool) {
	m.lazyInit()
	bidx, idx := m.find(key)
	if idx != nilIdx {
		return m.entries[idx].value, true
	}
	m.insert(bidx, key, value)
	return value, false
}

// Replace sets the value for key only when the key is present.
// It returns the previous value and true, or false without modifying the
// map when the key is absent.
func (m *OrderedHashMap[K, V]) Replace(key K, value V) (previous V, replaced bool) {
	if idx := m.lookup(key); idx != nilIdx {
		e := &m.entries[idx]
		previous, e.value = e.value, value
		return previous, true
	}
	return
}

// Remove deletes key and returns its value.
// The ok result reports whether the key was present; an absent key leaves
// the map untouched.
func (m *OrderedHashMap[K, V]) Remove(key K) (value V, ok bool) {
	if m.buckets == nil {
		return
	}
	bidx, idx := m.find(key)
	if idx == nilIdx {
		return
	}
	value = m.entries[idx].value
	m.chainUnlink(bidx, idx)
	m.orderUnlink(idx)
	m.release(idx)
	m.size--
	return value, true
}

// PutAll puts every pair produced by src, in src's iteration order.
// Later pairs overwrite earlier ones exactly as Put does.
//
//	dst.PutAll(src.All())
//	dst.PutAll(maps.All(goMap)) // go1.23+
func (m *OrderedHashMap[K, V]) PutAll(src func(yield func(K, V) bool)) {
	if src == nil {
		return
	}
	src(func(k K, v V) bool {
		m.Put(k, v)
		return true
	})
}

// FromMap imports key-value pairs from a standard Go map.
// The resulting order follows Go's map iteration order.
func (m *OrderedHashMap[K, V]) FromMap(source map[K]V) {
	for k, v := range source {
		m.Put(k, v)
	}
}

// Clear removes all entries. The bucket count and hasher are kept.
func (m *OrderedHashMap[K, V]) Clear() {
	if m.buckets == nil {
		return
	}
	m.reset()
}

// Clone creates a copy of the map with the same configuration and the
// same iteration order.
func (m *OrderedHashMap[K, V]) Clone() *OrderedHashMap[K, V] {
	if m.buckets == nil {
		return &OrderedHashMap[K, V]{}
	}
	clone := &OrderedHashMap[K, V]{
		seed:        m.seed,
		keyHash:     m.keyHash,
		valEqual:    m.valEqual,
		bucketCount: m.bucketCount,
		sizeHint:    max(m.sizeHint, m.size),
	}
	clone.reset()
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		e := &m.entries[idx]
		clone.insert(bucketIndex(clone.hashOf(&e.key), len(clone.buckets)), e.key, e.value)
	}
	return clone
}
