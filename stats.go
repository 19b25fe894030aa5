package ordmap

import (
	"fmt"
	"math"
	"strings"
)

// Stats returns statistics for the OrderedHashMap. It walks every bucket
// chain, so it is an O(N) operation intended for diagnostics.
func (m *OrderedHashMap[K, V]) Stats() *MapStats {
	stats := &MapStats{
		MinChain: math.MaxInt,
	}
	if m.buckets == nil {
		stats.MinChain = 0
		return stats
	}
	stats.Buckets = len(m.buckets)
	stats.Counter = m.size
	stats.ArenaLen = len(m.entries) - 1
	stats.ChainLens = make([]int, len(m.buckets))
	for i, head := range m.buckets {
		n := 0
		for idx := head; idx != nilIdx; idx = m.entries[idx].bucketNext {
			n++
		}
		stats.ChainLens[i] = n
		stats.Size += n
		if n == 0 {
			stats.EmptyBuckets++
		}
		stats.MinChain = min(stats.MinChain, n)
		stats.MaxChain = max(stats.MaxChain, n)
	}
	for idx := m.free; idx != nilIdx; idx = m.entries[idx].bucketNext {
		stats.FreeSlots++
	}
	return stats
}

// MapStats is OrderedHashMap statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code.
type MapStats struct {
	// Buckets is the fixed number of buckets.
	Buckets int
	// EmptyBuckets is the number of buckets that hold no entries.
	EmptyBuckets int
	// Size is the number of entries found by walking all bucket chains.
	Size int
	// Counter is the size counter kept by the map. It always equals Size.
	Counter int
	// MinChain is the length of the shortest bucket chain.
	MinChain int
	// MaxChain is the length of the longest bucket chain.
	MaxChain int
	// ArenaLen is the number of allocated arena slots, live or free.
	ArenaLen int
	// FreeSlots is the number of arena slots waiting for reuse.
	FreeSlots int
	// ChainLens holds the chain length of every bucket.
	ChainLens []int
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Buckets:      %d\n", s.Buckets))
	sb.WriteString(fmt.Sprintf("EmptyBuckets: %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("Size:         %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:      %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinChain:     %d\n", s.MinChain))
	sb.WriteString(fmt.Sprintf("MaxChain:     %d\n", s.MaxChain))
	sb.WriteString(fmt.Sprintf("ArenaLen:     %d\n", s.ArenaLen))
	sb.WriteString(fmt.Sprintf("FreeSlots:    %d\n", s.FreeSlots))
	sb.WriteString("}\n")
	return sb.String()
}
