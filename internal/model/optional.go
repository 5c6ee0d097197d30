package model

import (
	"bytes"
	"encoding/json"
)

// Optional carries a JSON field of a merge-patch request. It tells apart a
// field that was absent (Set == false), explicitly null (Set, Value == nil)
// and given a value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// IsNull reports whether the field was present with a null value.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// HasValue reports whether the field was present with a non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Set && o.Value != nil
}

// Apply overwrites *dst when a value was given. Absent and null leave it unchanged;
// callers reject null for required fields before applying.
func (o Optional[T]) Apply(dst *T) {
	if o.HasValue() {
		*dst = *o.Value
	}
}

// ApplyNullable writes the value, or nil for an explicit null, into a nullable field.
func (o Optional[T]) ApplyNullable(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}
