package ordmap

import (
	"runtime"
	"sync"
	"testing"
	"unsafe"
)

func TestLocked_StructSize(t *testing.T) {
	t.Logf("CacheLineSize : %d", CacheLineSize)
	size := unsafe.Sizeof(Locked[string, int]{})
	t.Log("Locked size:", size)
	if size%CacheLineSize != 0 {
		t.Fatalf("Locked doesn't meet CacheLineSize: %d", size)
	}
}

func TestLocked_BasicOperations(t *testing.T) {
	var l Locked[int, string]
	if _, ok := l.Get(1); ok || l.Size() != 0 || l.ContainsKey(1) {
		t.Fatalf("zero value not empty")
	}
	if len(l.Keys()) != 0 || len(l.Values()) != 0 || len(l.Entries()) != 0 {
		t.Fatalf("zero value has views")
	}
	l.View(func(m *OrderedHashMap[int, string]) {
		if !m.IsEmpty() {
			t.Fatalf("view of zero value not empty")
		}
	})

	l.Put(1, "a")
	l.Put(2, "b")
	if v, loaded := l.PutIfAbsent(1, "x"); !loaded || v != "a" {
		t.Fatalf("PutIfAbsent got %q %v", v, loaded)
	}
	if prev, ok := l.Replace(2, "c"); !ok || prev != "b" {
		t.Fatalf("Replace got %q %v", prev, ok)
	}
	if v, ok := l.Remove(1); !ok || v != "a" {
		t.Fatalf("Remove got %q %v", v, ok)
	}
	if keys := l.Keys(); len(keys) != 1 || keys[0] != 2 {
		t.Fatalf("keys got %v", keys)
	}
	if vals := l.Values(); len(vals) != 1 || vals[0] != "c" {
		t.Fatalf("values got %v", vals)
	}
	l.Clear()
	if l.Size() != 0 {
		t.Fatalf("size after clear %d", l.Size())
	}
}

func TestLocked_WrapsExisting(t *testing.T) {
	m := New[string, int](WithBucketCount(2))
	m.Put("a", 1)
	l := NewLocked(m)
	l.Put("b", 2)
	if m.Size() != 2 {
		t.Fatalf("wrapped map not shared")
	}
	if NewLocked[string, int](nil).Size() != 0 {
		t.Fatalf("nil map not replaced")
	}
}

func TestLocked_Concurrent(t *testing.T) {
	const perG = 500
	l := NewLocked(New[int, int]())
	n := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(n * 2)
	for g := 0; g < n; g++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				l.Put(base*perG+i, i)
			}
		}(g)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				l.Get(base*perG + i)
				l.Size()
			}
		}(g)
	}
	wg.Wait()
	if l.Size() != n*perG {
		t.Fatalf("size got %d, expected %d", l.Size(), n*perG)
	}
	l.Do(func(m *OrderedHashMap[int, int]) {
		checkInvariants(t, m)
	})
}
