//go:build go1.23

package ordmap

import (
	"maps"
	"slices"
	"testing"
)

func TestOrderedHashMap_RangeOverFunc(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"d", "a", "c", "b"} {
		m.Put(k, i)
	}

	var keys []string
	for k, v := range m.All() {
		keys = append(keys, k)
		if got, _ := m.Get(k); got != v {
			t.Fatalf("All yielded %s=%d, map holds %d", k, v, got)
		}
	}
	if !slices.Equal(keys, []string{"d", "a", "c", "b"}) {
		t.Fatalf("All order got %v", keys)
	}

	count := 0
	for range m.RangeKeys {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("early termination failed, count=%d", count)
	}

	if got := slices.Collect[int](m.RangeValues); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("RangeValues got %v", got)
	}
}

func TestOrderedHashMap_PutAll_StdMaps(t *testing.T) {
	m := New[int, string]()
	m.PutAll(maps.All(map[int]string{1: "a", 2: "b", 3: "c"}))
	if m.Size() != 3 {
		t.Fatalf("size got %d", m.Size())
	}
	keys := m.Keys()
	slices.Sort(keys)
	if !slices.Equal(keys, []int{1, 2, 3}) {
		t.Fatalf("keys got %v", keys)
	}

	dst := New[int, string]()
	dst.PutAll(m.All())
	if !slices.Equal(dst.Keys(), m.Keys()) {
		t.Fatalf("PutAll did not keep source order")
	}
	checkInvariants(t, dst)
}
