package helper

import (
	"fmt"
)

// TypedValueOf asserts v to the expected type T.
// Returns an error if the type assertion fails.
func TypedValueOf[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type: %T", v)
	}
	return t, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when the type is guaranteed by construction (e.g. typed fronts over
// boxed invokables).
func MustTypedValue[T any](v any) T {
	t, err := TypedValueOf[T](v)
	if err != nil {
		panic(err)
	}
	return t
}
