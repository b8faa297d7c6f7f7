package helper

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates a dynamic value did not have the expected type.
var ErrTypeMismatch = errors.New("unexpected dynamic type")

// Typed asserts raw to the expected type T.
func Typed[T any](raw any) (T, error) {
	v, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, got %T", ErrTypeMismatch, zero, raw)
	}
	return v, nil
}

// GetTypedValueOf runs getFn and asserts its result to T. Useful when
// unwrapping any-valued read actions into typed ones.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	res, err := getFn()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get value: %w", err)
	}
	return Typed[T](res)
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when failure should be fatal.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
