package ordmap

// Map is the full operation set of an insertion-ordered map, including
// the operations that OrderedHashMap declares but rejects with
// ErrUnsupportedOperation.
type Map[K comparable, V any] interface {
	Size() int
	IsEmpty() bool
	ContainsKey(key K) bool
	ContainsValue(value V) bool

	Get(key K) (value V, ok bool)
	GetOrDefault(key K, defaultValue V) V
	Put(key K, value V) (previous V, loaded bool)
	PutIfAbsent(key K, value V) (actual V, loaded bool)
	Replace(key K, value V) (previous V, replaced bool)
	Remove(key K) (value V, ok bool)
	PutAll(src func(yield func(K, V) bool))
	Clear()

	Keys() []K
	Values() []V
	Entries() []EntryOf[K, V]
	Range(yield func(key K, value V) bool)

	CompareAndDelete(key K, old V) (deleted bool, err error)
	CompareAndSwap(key K, old, newValue V) (swapped bool, err error)
	ForEach(fn func(key K, value V)) error
	ReplaceAll(fn func(key K, value V) V) error
	ComputeIfAbsent(key K, fn func(key K) V) (V, error)
	ComputeIfPresent(key K, fn func(key K, value V) V) (V, error)
	Compute(key K, fn func(key K, value V, loaded bool) V) (V, error)
	Merge(key K, value V, fn func(old, value V) V) (V, error)
}

var _ Map[string, int] = (*OrderedHashMap[string, int])(nil)
