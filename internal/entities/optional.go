package entities

import (
	"bytes"
	"encoding/json"
)

// Optional wraps a field that may be missing from a JSON payload.
// It distinguishes three states a plain pointer cannot: the key was not
// provided at all, the key was provided as null, and the key was provided
// with a value. Partial updates rely on this to tell "leave the field
// alone" apart from "clear the field".
type Optional[T any] struct {
	Set   bool // the key was present in the payload
	Valid bool // the value was non-null
	Value T
}

// Some returns an Optional holding the given value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Ptr returns the value as a nullable pointer: nil when the Optional was
// null, a copy of the value otherwise.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

var jsonNull = []byte("null")

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes the Set flag reliable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}
