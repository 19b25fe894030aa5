package ordmap

import (
	"github.com/emirpasic/gods/v2/maps"
)

// GodsMap adapts an OrderedHashMap to the gods maps.Map interface, so it
// can be handed to code written against github.com/emirpasic/gods/v2
// containers. Keys and Values keep insertion order, matching gods'
// linkedhashmap.
type GodsMap[K comparable, V any] struct {
	m *OrderedHashMap[K, V]
}

var _ maps.Map[string, int] = (*GodsMap[string, int])(nil)

// AsGodsMap returns a gods view backed by m. Changes made through either
// side are visible to the other.
func AsGodsMap[K comparable, V any](m *OrderedHashMap[K, V]) *GodsMap[K, V] {
	if m == nil {
		m = &OrderedHashMap[K, V]{}
	}
	return &GodsMap[K, V]{m: m}
}

// Unwrap returns the backing map.
func (g *GodsMap[K, V]) Unwrap() *OrderedHashMap[K, V] { return g.m }

func (g *GodsMap[K, V]) Put(key K, value V) { g.m.Put(key, value) }

func (g *GodsMap[K, V]) Get(key K) (value V, found bool) { return g.m.Get(key) }

func (g *GodsMap[K, V]) Remove(key K) { g.m.Remove(key) }

func (g *GodsMap[K, V]) Keys() []K { return g.m.Keys() }

func (g *GodsMap[K, V]) Empty() bool { return g.m.IsEmpty() }

func (g *GodsMap[K, V]) Size() int { return g.m.Size() }

func (g *GodsMap[K, V]) Clear() { g.m.Clear() }

func (g *GodsMap[K, V]) Values() []V { return g.m.Values() }

func (g *GodsMap[K, V]) String() string { return g.m.String() }
