package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a valid value or the details of a failure, never both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	details   ErrorsDetails
	isValid   bool
}

// Ok creates a valid Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{
		value:     value,
		isValid:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err creates a failed Result from one or more errors. Plain Go errors are
// converted with DetailsFromError.
func Err[T any](errs ...error) Result[T] {
	details := ErrorsDetails{}
	for _, err := range errs {
		details = Merge(details, DetailsFromError(err))
	}
	return ErrDetails[T](details)
}

// ErrDetails creates a failed Result from already built details. Empty
// details get a placeholder error so that a Fail never has an empty list.
func ErrDetails[T any](details ErrorsDetails) Result[T] {
	if details.IsEmpty() {
		details = details.WithErrors(NewError("rop: failure without details"))
	}
	return Result[T]{
		details:   details,
		isValid:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrMessage creates a failed Result with a single Error.
func ErrMessage[T any](message string) Result[T] {
	return ErrDetails[T](DetailsFromMessages(message))
}

// ErrWithValue creates a failed Result that remembers the input value.
func ErrWithValue[T, V any](input V, errs ...error) Result[T] {
	return ErrDetails[T](WithValue(Err[T](errs...).details, input))
}

// FailFrom re-types a failed Result keeping its details, id and creation time.
// Calling it on a valid Result is a programming error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isValid {
		panic("rop: FailFrom called on a valid result")
	}
	return Result[Out]{
		details:   from.details,
		isValid:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromTuple converts a (value, error) pair.
func FromTuple[T any](value T, err error) Result[T] {
	if !IsNil(err) {
		return Err[T](err)
	}
	return Ok(value)
}

// Value returns the valid value. It panics on a failed Result: reading the
// value of a failure is a contract violation, not a recoverable error.
func (r Result[T]) Value() T {
	if !r.isValid {
		panic("rop: Value called on a failed result: " + r.details.Error())
	}
	return r.value
}

// Get returns the value and whether the Result is valid.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.isValid
}

func (r Result[T]) ValueOr(fallback T) T {
	if r.isValid {
		return r.value
	}
	return fallback
}

// Details returns the failure details; empty for a valid Result.
func (r Result[T]) Details() ErrorsDetails {
	return r.details
}

// Err returns the failure as a Go error, or nil for a valid Result.
func (r Result[T]) Err() error {
	if r.isValid {
		return nil
	}
	return r.details
}

// Unwrap mirrors the (value, error) convention.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Err()
}

func (r Result[T]) IsValid() bool {
	return r.isValid
}

func (r Result[T]) IsFail() bool {
	return !r.isValid
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
