package ordmap

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type hashFunc func(unsafe.Pointer, uintptr) uintptr
type equalFunc func(unsafe.Pointer, unsafe.Pointer) bool

// bucketIndex routes a hash to one of n buckets. Hashes are unsigned, so
// the absolute value taken by the classic abs(hash) % n is implicit.
func bucketIndex(hash uintptr, n int) int {
	return int(hash % uintptr(n))
}

// defaultHasher picks the hash and equality functions for K and V.
// Integer keys hash to their absolute value, which keeps small keys in
// predictable buckets (k and -k share one). Everything else goes through
// the runtime's own map hasher.
func defaultHasher[K comparable, V any]() (keyHash hashFunc, valEqual equalFunc) {
	keyHash, valEqual = defaultHasherUsingBuiltIn[K, V]()

	switch any(*new(K)).(type) {
	case int:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return signedHash(*(*int)(p))
		}, valEqual
	case int64:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return signedHash(*(*int64)(p))
		}, valEqual
	case int32:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return signedHash(*(*int32)(p))
		}, valEqual
	case int16:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return signedHash(*(*int16)(p))
		}, valEqual
	case int8:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return signedHash(*(*int8)(p))
		}, valEqual
	case uint, uintptr:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return *(*uintptr)(p)
		}, valEqual
	case uint64:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return unsignedHash(*(*uint64)(p))
		}, valEqual
	case uint32:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return unsignedHash(*(*uint32)(p))
		}, valEqual
	case uint16:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return unsignedHash(*(*uint16)(p))
		}, valEqual
	case uint8:
		return func(p unsafe.Pointer, _ uintptr) uintptr {
			return unsignedHash(*(*uint8)(p))
		}, valEqual
	default:
		return keyHash, valEqual
	}
}

func signedHash[T constraints.Signed](v T) uintptr {
	u := uint64(int64(v))
	if v < 0 {
		u = -u
	}
	return unsignedHash(u)
}

func unsignedHash[T constraints.Unsigned](v T) uintptr {
	u := uint64(v)
	if bits.UintSize == 32 {
		return uintptr(u) ^ uintptr(u>>32)
	}
	return uintptr(u)
}

// defaultHasherUsingBuiltIn obtains Go's built-in hash and equality functions
// for the specified types from the map type descriptor.
//
// Notes:
//   - This implementation relies on Go's internal type representation
//   - It should be verified for compatibility with each Go version upgrade
//   - valEqual is nil when V is not comparable
func defaultHasherUsingBuiltIn[K comparable, V any]() (keyHash hashFunc, valEqual equalFunc) {
	var m map[K]V
	mapType := iTypeOf(m).MapType()
	return mapType.Hasher, mapType.Elem.Equal
}

type iTFlag uint8
type iKind uint8
type iNameOff int32
type iTypeOff int32

type iType struct {
	Size_       uintptr
	PtrBytes    uintptr
	Hash        uint32
	TFlag       iTFlag
	Align_      uint8
	FieldAlign_ uint8
	Kind_       iKind
	// (ptr to object A, ptr to object B) -> ==?
	Equal     func(unsafe.Pointer, unsafe.Pointer) bool
	GCData    *byte
	Str       iNameOff
	PtrToThis iTypeOff
}

func (t *iType) MapType() *iMapType {
	return (*iMapType)(unsafe.Pointer(t))
}

type iMapType struct {
	iType
	Key   *iType
	Elem  *iType
	Group *iType
	// (ptr to key, seed) -> hash
	Hasher func(unsafe.Pointer, uintptr) uintptr
}

type iEmptyInterface struct {
	Type *iType
	Data unsafe.Pointer
}

func iTypeOf(a any) *iType {
	eface := *(*iEmptyInterface)(unsafe.Pointer(&a))
	return (*iType)(noescape(unsafe.Pointer(eface.Type)))
}

// noescape hides a pointer from escape analysis.  noescape is
// the identity function but escape analysis doesn't think the
// output depends on the input.
// USE CAREFULLY!
//
// nolint:all
//
//go:nosplit
//goland:noinspection ALL
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
