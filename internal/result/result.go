// Package result provides the uniform success/failure container returned by
// fallible use-case operations instead of raw errors crossing the boundary.
package result

import (
	apperrors "github.com/allisson/places/internal/errors"
)

// Result holds either a success value or a DomainError, never both.
// The invariant is enforced by construction: only Ok and Fail build values.
type Result[T any] struct {
	data    T
	err     *apperrors.DomainError
	success bool
}

// Ok creates a successful result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{data: data, success: true}
}

// Fail creates a failed result carrying the domain error.
func Fail[T any](err *apperrors.DomainError) Result[T] {
	return Result[T]{err: err}
}

// FailWith is shorthand for failing with a freshly built DomainError.
func FailWith[T any](code, message string, category error) Result[T] {
	return Fail[T](apperrors.NewDomainError(code, message, category))
}

// Success reports whether the result carries data.
func (r Result[T]) Success() bool {
	return r.success
}

// Data returns the success value. Only meaningful when Success is true.
func (r Result[T]) Data() T {
	return r.data
}

// Err returns the domain error, or nil for a successful result.
func (r Result[T]) Err() *apperrors.DomainError {
	return r.err
}

// Code returns the error code, or the empty string for a successful result.
func (r Result[T]) Code() string {
	if r.err == nil {
		return ""
	}
	return r.err.Code
}
