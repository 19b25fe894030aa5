package ordmap

import (
	"sync"
	"unsafe"
)

// Locked serializes access to an OrderedHashMap with a single RWMutex:
// mutations take the lock exclusively, reads share it. It adds no other
// behavior; iteration order and results are those of the wrapped map.
//
// The zero value is ready to use. A Locked must not be copied after first
// use.
type Locked[K comparable, V any] struct {
	//lint:ignore U1000 prevents false sharing
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		mu sync.RWMutex
		m  unsafe.Pointer
	}{})%CacheLineSize) % CacheLineSize]byte

	mu sync.RWMutex
	m  *OrderedHashMap[K, V]
}

// NewLocked wraps m. A nil m is replaced with an empty map.
func NewLocked[K comparable, V any](m *OrderedHashMap[K, V]) *Locked[K, V] {
	if m == nil {
		m = &OrderedHashMap[K, V]{}
	}
	return &Locked[K, V]{m: m}
}

// inner must be called with mu held.
func (l *Locked[K, V]) inner() *OrderedHashMap[K, V] {
	if l.m == nil {
		l.m = &OrderedHashMap[K, V]{}
	}
	return l.m
}

// Do runs fn with exclusive access to the wrapped map, for compound
// operations that must not interleave with other callers. fn must not
// retain the map.
func (l *Locked[K, V]) Do(fn func(m *OrderedHashMap[K, V])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.inner())
}

// View runs fn with shared access. fn must only read.
func (l *Locked[K, V]) View(fn func(m *OrderedHashMap[K, V])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.m == nil {
		fn(&OrderedHashMap[K, V]{})
		return
	}
	fn(l.m)
}

// Get returns the value stored for key under the read lock.
func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.m == nil {
		var zero V
		return zero, false
	}
	return l.m.Get(key)
}

// ContainsKey reports whether key is present.
func (l *Locked[K, V]) ContainsKey(key K) bool {
	_, ok := l.Get(key)
	return ok
}

// Size returns the number of entries.
func (l *Locked[K, V]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.m == nil {
		return 0
	}
	return l.m.Size()
}

// Put sets the value for key; see OrderedHashMap.Put.
func (l *Locked[K, V]) Put(key K, value V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner().Put(key, value)
}

// PutIfAbsent stores value only when key is absent; see OrderedHashMap.PutIfAbsent.
func (l *Locked[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner().PutIfAbsent(key, value)
}

// Replace sets the value for key only when the key is present.
func (l *Locked[K, V]) Replace(key K, value V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner().Replace(key, value)
}

// Remove deletes key and returns its value.
func (l *Locked[K, V]) Remove(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner().Remove(key)
}

// Clear removes all entries.
func (l *Locked[K, V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner().Clear()
}

// Keys returns a snapshot of the keys in insertion order.
func (l *Locked[K, V]) Keys() []K {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.m == nil {
		return []K{}
	}
	return l.m.Keys()
}

// Values returns a snapshot of the values in insertion order.
func (l *Locked[K, V]) Values() []V {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.m == nil {
		return []V{}
	}
	return l.m.Values()
}

// Entries returns a snapshot of the entries in insertion order.
func (l *Locked[K, V]) Entries() []EntryOf[K, V] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.m == nil {
		return []EntryOf[K, V]{}
	}
	return l.m.Entries()
}
