package rop

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the type-erased view of a Result, used where results of
// different value types are inspected together.
type Outcome interface {
	// IsValid returns true if the result holds a value
	IsValid() bool
	// Details returns the failure details (empty when valid)
	Details() ErrorsDetails
}

// Traced exposes the identity of a result.
type Traced interface {
	Outcome
	// Id is unique per constructed result
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Provider extends Outcome with typed access to the value.
type Provider[T any] interface {
	Traced
	Get() (T, bool)
	Err() error
}

var _ Provider[int] = Result[int]{}
