package ordmap

import (
	"errors"
)

// ErrUnsupportedOperation is matched by every error returned from an
// operation OrderedHashMap declares but does not implement. It wraps
// errors.ErrUnsupported. The condition is permanent; retrying never helps.
var ErrUnsupportedOperation = &UnsupportedOperationError{}

// UnsupportedOperationError reports a call to an unsupported operation.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Op == "" {
		return "ordmap: unsupported operation"
	}
	return "ordmap: unsupported operation " + e.Op
}

// Is matches any *UnsupportedOperationError, so that
// errors.Is(err, ErrUnsupportedOperation) holds whatever Op is.
func (e *UnsupportedOperationError) Is(target error) bool {
	_, ok := target.(*UnsupportedOperationError)
	return ok
}

func (e *UnsupportedOperationError) Unwrap() error {
	return errors.ErrUnsupported
}

func unsupported(op string) error {
	return &UnsupportedOperationError{Op: op}
}

// The operations below are part of the Map interface but not implemented.
// They never modify the map and always return an error matching
// ErrUnsupportedOperation, whatever their arguments.

// CompareAndDelete would delete key only if it maps to old.
func (m *OrderedHashMap[K, V]) CompareAndDelete(key K, old V) (deleted bool, err error) {
	return false, unsupported("CompareAndDelete")
}

// CompareAndSwap would replace the value of key only if it equals old.
func (m *OrderedHashMap[K, V]) CompareAndSwap(key K, old, newValue V) (swapped bool, err error) {
	return false, unsupported("CompareAndSwap")
}

// ForEach is unsupported; use Range.
func (m *OrderedHashMap[K, V]) ForEach(fn func(key K, value V)) error {
	return unsupported("ForEach")
}

// ReplaceAll is unsupported.
func (m *OrderedHashMap[K, V]) ReplaceAll(fn func(key K, value V) V) error {
	return unsupported("ReplaceAll")
}

// ComputeIfAbsent is unsupported.
func (m *OrderedHashMap[K, V]) ComputeIfAbsent(key K, fn func(key K) V) (value V, err error) {
	return value, unsupported("ComputeIfAbsent")
}

// ComputeIfPresent is unsupported.
func (m *OrderedHashMap[K, V]) ComputeIfPresent(key K, fn func(key K, value V) V) (value V, err error) {
	return value, unsupported("ComputeIfPresent")
}

// Compute is unsupported.
func (m *OrderedHashMap[K, V]) Compute(key K, fn func(key K, value V, loaded bool) V) (value V, err error) {
	return value, unsupported("Compute")
}

// Merge is unsupported.
func (m *OrderedHashMap[K, V]) Merge(key K, value V, fn func(old, value V) V) (merged V, err error) {
	return merged, unsupported("Merge")
}
