package model

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state patch value: absent, explicitly null, or a value.
// The zero Field is absent. When decoded from JSON, a missing key stays absent
// and a literal null becomes an explicit null.
type Field[T any] struct {
	set   bool
	value *T
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{set: true, value: &v}
}

// Null returns a Field that clears the stored value.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// IsSet reports whether the field was present in the patch.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the field was present and explicitly null.
func (f Field[T]) IsNull() bool { return f.set && f.value == nil }

// Ptr returns the value, or nil when absent or null.
func (f Field[T]) Ptr() *T { return f.value }

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}
