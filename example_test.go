package ordmap_test

import (
	"errors"
	"fmt"

	"github.com/llxisdsh/ordmap"
)

func ExampleOrderedHashMap() {
	var m ordmap.OrderedHashMap[string, int]
	m.Put("one", 1)
	m.Put("two", 2)
	m.Put("three", 3)
	m.Put("one", 10)
	m.Remove("two")
	m.Put("two", 20)

	m.Range(func(k string, v int) bool {
		fmt.Println(k, v)
		return true
	})
	// Output:
	// one 10
	// three 3
	// two 20
}

func ExampleWithBucketCount() {
	m := ordmap.New[int, string](ordmap.WithBucketCount(4))
	for i := 0; i < 8; i++ {
		m.Put(i, fmt.Sprint(i))
	}
	stats := m.Stats()
	fmt.Println(stats.Buckets, stats.MinChain, stats.MaxChain)
	// Output:
	// 4 2 2
}

func ExampleOrderedHashMap_Compute() {
	m := ordmap.New[string, int]()
	_, err := m.Compute("k", func(string, int, bool) int { return 1 })
	fmt.Println(errors.Is(err, errors.ErrUnsupported), m.Size())
	// Output:
	// true 0
}
