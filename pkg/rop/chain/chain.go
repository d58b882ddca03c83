package chain

import (
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
	opts   []solo.TryOption
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T], opts ...solo.TryOption) *Chain[T] {
	return &Chain[T]{
		result: result,
		opts:   opts,
	}
}

// FromValue creates a new chain from a valid value
func FromValue[T any](value T, opts ...solo.TryOption) *Chain[T] {
	return Start(rop.Ok(value), opts...)
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) with(result rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: result, opts: c.opts}
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onValid func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		result: solo.Bind(c.result, onValid),
		opts:   c.opts,
	}
}

// ThenTry chains a function that returns (U, error); returned errors and
// panics become failures with the chain's try options
func ThenTry[T, U any](c *Chain[T], tryOnValid func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: solo.TryBindE(c.result, tryOnValid, c.opts...),
		opts:   c.opts,
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValid func(T) U) *Chain[U] {
	return &Chain[U]{
		result: solo.Map(c.result, onValid),
		opts:   c.opts,
	}
}

// Ensure fails the chain when predicate rejects the value
func (c *Chain[T]) Ensure(predicate func(T) bool, errorBuilder func(T) rop.Error) *Chain[T] {
	return c.with(solo.MapEnsure(c.result, predicate, errorBuilder))
}

// Tee performs a side effect without changing the result
func (c *Chain[T]) Tee(onValid func(T)) *Chain[T] {
	return c.with(solo.Tee(c.result, onValid))
}

// OrElse recovers a failed chain
func (c *Chain[T]) OrElse(onFail func(rop.ErrorsDetails) rop.Result[T]) *Chain[T] {
	return c.with(solo.BindIfFail(c.result, onFail))
}

// OnException recovers a chain that failed with a captured fault
func (c *Chain[T]) OnException(onFail func(error) rop.Result[T]) *Chain[T] {
	return c.with(solo.BindIfFailWithException(c.result, onFail))
}

// Recover recovers a failed chain from the value stashed in its details
func Recover[T, V any](c *Chain[T], onFail func(V) rop.Result[T]) *Chain[T] {
	return c.with(solo.BindIfFailWithValue(c.result, onFail))
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c *Chain[T], onValid func(T) U, onFail func(rop.ErrorsDetails) U) U {
	return solo.Match(c.result, onValid, onFail)
}
