// Package optional provides a container for a value that may be absent.
package optional

import (
	"encoding/json"

	"golang.org/x/exp/constraints"
)

// Optional is a value that may be absent.
// The zero Optional is absent.
type Optional[T any] struct {
	value T
	isSet bool
}

// IsSet returns true if the value is present.
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Set assigns the value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset clears the value.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the value, or def if absent.
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Unwrap returns the value.
// It panics if the value is absent.
func (o Optional[T]) Unwrap() T {
	if o.isSet {
		return o.value
	}
	panic("optional value is not set")
}

// MarshalJSON implements json.Marshaler interface.
// An absent value is encoded as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler interface.
// null clears the value.
func (o *Optional[T]) UnmarshalJSON(j []byte) error {
	if string(j) == "null" {
		o.Unset()
		return nil
	}
	var v T
	if e := json.Unmarshal(j, &v); e != nil {
		return e
	}
	o.Set(v)
	return nil
}

// Some creates a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

// None creates an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// CastInt converts an integer optional value to another integer type.
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if v, ok := a.Get(); ok {
		out.Set(B(v))
	}
	return out
}
