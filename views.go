package ordmap

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Keys returns a snapshot of all keys in insertion order.
// Later changes to the map do not affect the returned slice.
func (m *OrderedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		keys = append(keys, m.entries[idx].key)
	}
	return keys
}

// Values returns a snapshot of all values in insertion order of their keys.
func (m *OrderedHashMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		values = append(values, m.entries[idx].value)
	}
	return values
}

// Entries returns a snapshot of all key-value pairs in insertion order.
func (m *OrderedHashMap[K, V]) Entries() []EntryOf[K, V] {
	entries := make([]EntryOf[K, V], 0, m.size)
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		e := &m.entries[idx]
		entries = append(entries, EntryOf[K, V]{Key: e.key, Value: e.value})
	}
	return entries
}

// ToMap collects all entries into a map[K]V.
func (m *OrderedHashMap[K, V]) ToMap() map[K]V {
	a := make(map[K]V, m.size)
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		a[m.entries[idx].key] = m.entries[idx].value
	}
	return a
}

// Range calls yield for each entry in insertion order until yield returns
// false. The map must not be modified during the call.
func (m *OrderedHashMap[K, V]) Range(yield func(key K, value V) bool) {
	for idx := m.head; idx != nilIdx; idx = m.entries[idx].orderNext {
		if !yield(m.entries[idx].key, m.entries[idx].value) {
			return
		}
	}
}

// RangeKeys to iterate over all keys in insertion order
func (m *OrderedHashMap[K, V]) RangeKeys(yield func(key K) bool) {
	m.Range(func(k K, _ V) bool {
		return yield(k)
	})
}

// RangeValues to iterate over all values in insertion order
func (m *OrderedHashMap[K, V]) RangeValues(yield func(value V) bool) {
	m.Range(func(_ K, v V) bool {
		return yield(v)
	})
}

// All is the iterator version of Range, for use with range-over-func.
func (m *OrderedHashMap[K, V]) All() func(yield func(K, V) bool) {
	return m.Range
}

// String implement the formatting output interface fmt.Stringer.
// At most 1024 entries are printed.
func (m *OrderedHashMap[K, V]) String() string {
	const limit = 1024
	var sb strings.Builder
	sb.WriteString("OrderedHashMap[")
	n := 0
	m.Range(func(k K, v V) bool {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, k)
		sb.WriteByte(':')
		fmt.Fprint(&sb, v)
		n++
		return n < limit
	})
	sb.WriteByte(']')
	return sb.String()
}

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the JSON functions used for values.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON encodes the map as a JSON object whose members appear in
// insertion order.
func (m *OrderedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var err error
	m.Range(func(k K, v V) bool {
		var ks string
		if ks, err = marshalKey(k); err != nil {
			return false
		}
		var kb, vb []byte
		if kb, err = json.Marshal(ks); err != nil {
			return false
		}
		if jsonMarshal != nil {
			vb, err = jsonMarshal(v)
		} else {
			vb, err = json.Marshal(v)
		}
		if err != nil {
			err = fmt.Errorf("ordmap: marshal value of %q: %w", ks, err)
			return false
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object and puts its members in document
// order. Existing entries are kept; duplicate members overwrite earlier
// ones without moving them. A JSON null leaves the map unchanged.
// The whole object is decoded before the first Put, so on error the map
// is left untouched.
func (m *OrderedHashMap[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("ordmap: %w", err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ordmap: expected JSON object, got %v", tok)
	}
	var decoded []EntryOf[K, V]
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("ordmap: %w", err)
		}
		ks, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordmap: expected object key, got %v", tok)
		}
		key, err := unmarshalKey[K](ks)
		if err != nil {
			return err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("ordmap: value of %q: %w", ks, err)
		}
		var value V
		if jsonUnmarshal != nil {
			err = jsonUnmarshal(raw, &value)
		} else {
			err = json.Unmarshal(raw, &value)
		}
		if err != nil {
			return fmt.Errorf("ordmap: value of %q: %w", ks, err)
		}
		decoded = append(decoded, EntryOf[K, V]{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("ordmap: %w", err)
	}
	for _, e := range decoded {
		m.Put(e.Key, e.Value)
	}
	return nil
}

// marshalKey follows encoding/json's rules for map keys: string kinds
// first, then encoding.TextMarshaler, then integer kinds.
func marshalKey[K comparable](k K) (string, error) {
	rv := reflect.ValueOf(k)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	if tm, ok := any(k).(encoding.TextMarshaler); ok {
		b, err := tm.MarshalText()
		if err != nil {
			return "", fmt.Errorf("ordmap: marshal key: %w", err)
		}
		return string(b), nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return "", fmt.Errorf("ordmap: unsupported JSON key type %T", k)
}

// unmarshalKey is the inverse of marshalKey and checks key kinds in the
// same order.
func unmarshalKey[K comparable](s string) (K, error) {
	var k K
	rv := reflect.ValueOf(&k).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(s)
		return k, nil
	}
	if tu, ok := any(&k).(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(s)); err != nil {
			return k, fmt.Errorf("ordmap: unmarshal key %q: %w", s, err)
		}
		return k, nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return k, fmt.Errorf("ordmap: unmarshal key %q: %w", s, err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return k, fmt.Errorf("ordmap: unmarshal key %q: %w", s, err)
		}
		rv.SetUint(n)
	default:
		return k, fmt.Errorf("ordmap: unsupported JSON key type %T", k)
	}
	return k, nil
}
