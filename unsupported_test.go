package ordmap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedHashMap_UnsupportedOperations(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "Value")
	m.Put(2, "Other")
	before := m.Entries()

	tests := []struct {
		op   string
		call func() error
	}{
		{"CompareAndDelete", func() error {
			_, err := m.CompareAndDelete(1, "Value")
			return err
		}},
		{"CompareAndSwap", func() error {
			_, err := m.CompareAndSwap(1, "Value", "NewValue")
			return err
		}},
		{"ForEach", func() error { return m.ForEach(nil) }},
		{"ReplaceAll", func() error { return m.ReplaceAll(nil) }},
		{"ComputeIfAbsent", func() error {
			_, err := m.ComputeIfAbsent(3, nil)
			return err
		}},
		{"ComputeIfPresent", func() error {
			_, err := m.ComputeIfPresent(1, nil)
			return err
		}},
		{"Compute", func() error {
			_, err := m.Compute(1, nil)
			return err
		}},
		{"Merge", func() error {
			_, err := m.Merge(1, "1", nil)
			return err
		}},
		{"Merge", func() error {
			_, err := m.Merge(1, "1", func(old, value string) string { return old + value })
			return err
		}},
		{"ForEach", func() error {
			return m.ForEach(func(int, string) { t.Fatalf("ForEach callback invoked") })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatalf("%s: expected error", tt.op)
			}
			if !errors.Is(err, ErrUnsupportedOperation) {
				t.Fatalf("%s: %v does not match ErrUnsupportedOperation", tt.op, err)
			}
			if !errors.Is(err, errors.ErrUnsupported) {
				t.Fatalf("%s: %v does not match errors.ErrUnsupported", tt.op, err)
			}
			var uerr *UnsupportedOperationError
			if !errors.As(err, &uerr) || uerr.Op != tt.op {
				t.Fatalf("%s: got %#v", tt.op, err)
			}
			if diff := cmp.Diff(before, m.Entries()); diff != "" {
				t.Fatalf("%s modified the map (-want +got):\n%s", tt.op, diff)
			}
		})
	}
}

func TestOrderedHashMap_UnsupportedOperations_ZeroValue(t *testing.T) {
	var m OrderedHashMap[string, int]
	if _, err := m.Compute("a", nil); !errors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("got %v", err)
	}
	if m.Size() != 0 || m.buckets != nil {
		t.Fatalf("unsupported operation initialized the map")
	}
}

func TestUnsupportedOperationError_Error(t *testing.T) {
	if got := ErrUnsupportedOperation.Error(); got != "ordmap: unsupported operation" {
		t.Fatalf("got %q", got)
	}
	if got := unsupported("Merge").Error(); got != "ordmap: unsupported operation Merge" {
		t.Fatalf("got %q", got)
	}
}
