package ordmap

import (
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/v2/maps"
	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGodsMap_Interface(t *testing.T) {
	var gm maps.Map[string, int] = AsGodsMap(New[string, int]())
	assert.True(t, gm.Empty())

	gm.Put("c", 3)
	gm.Put("a", 1)
	gm.Put("b", 2)
	gm.Put("a", 10)

	assert.False(t, gm.Empty())
	assert.Equal(t, 3, gm.Size())
	assert.Equal(t, []string{"c", "a", "b"}, gm.Keys())
	assert.Equal(t, []int{3, 10, 2}, gm.Values())

	v, found := gm.Get("a")
	assert.True(t, found)
	assert.Equal(t, 10, v)

	gm.Remove("c")
	_, found = gm.Get("c")
	assert.False(t, found)
	assert.Equal(t, "OrderedHashMap[a:10 b:2]", gm.String())

	gm.Clear()
	assert.True(t, gm.Empty())
}

func TestGodsMap_SharesBackingMap(t *testing.T) {
	m := New[int, string]()
	g := AsGodsMap(m)
	g.Put(1, "a")
	m.Put(2, "b")
	require.Equal(t, []int{1, 2}, g.Keys())
	require.Same(t, m, g.Unwrap())

	require.Equal(t, 0, AsGodsMap[int, string](nil).Size())
}

// TestGodsMap_MatchesLinkedHashMap replays the same random operations on
// gods' linkedhashmap and on OrderedHashMap and expects identical results.
func TestGodsMap_MatchesLinkedHashMap(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	ref := linkedhashmap.New[int, int]()
	m := New[int, int](WithBucketCount(3))
	g := AsGodsMap(m)

	for i := 0; i < 5000; i++ {
		k := r.IntN(40)
		switch r.IntN(3) {
		case 0, 1:
			v := r.Int()
			ref.Put(k, v)
			g.Put(k, v)
		case 2:
			ref.Remove(k)
			g.Remove(k)
		}
		require.Equal(t, ref.Size(), g.Size(), "op %d", i)
		if i%50 == 0 {
			require.Equal(t, ref.Keys(), g.Keys(), "op %d", i)
			require.Equal(t, ref.Values(), g.Values(), "op %d", i)
		}
	}
	checkInvariants(t, m)
	require.Equal(t, ref.Keys(), g.Keys())
	require.Equal(t, ref.Values(), g.Values())
}
