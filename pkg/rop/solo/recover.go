package solo

import (
	"github.com/ib-77/fallible/pkg/rop"
)

func keep[T any](input rop.Result[T]) func(T) rop.Result[T] {
	return func(T) rop.Result[T] {
		return input
	}
}

// BindIfFail calls onFail only for a failed input; valid inputs pass through.
func BindIfFail[T any](input rop.Result[T],
	onFail func(d rop.ErrorsDetails) rop.Result[T]) rop.Result[T] {

	return Match(input, keep(input), onFail)
}

// BindIfFailWithValue recovers from the value stashed by a ...WithValue
// combinator. When no value of type V was stashed the result is a failure
// carrying the original errors followed by the lookup miss.
func BindIfFailWithValue[T, V any](input rop.Result[T],
	onFail func(v V) rop.Result[T]) rop.Result[T] {

	return BindIfFail(input, func(d rop.ErrorsDetails) rop.Result[T] {
		stashed := rop.StashedValue[V](d)
		if stashed.IsFail() {
			return rop.ErrDetails[T](rop.Merge(d, stashed.Details()))
		}
		return onFail(stashed.Value())
	})
}

// BindIfFailWithException recovers only failures that carry a captured
// exception. Any other failure is returned unchanged.
func BindIfFailWithException[T any](input rop.Result[T],
	onFail func(fault error) rop.Result[T]) rop.Result[T] {

	return BindIfFail(input, func(d rop.ErrorsDetails) rop.Result[T] {
		fault, ok := d.Exception()
		if !ok {
			return input
		}
		return onFail(fault)
	})
}

// BindIfFailWithoutException recovers only failures without a captured
// exception, i.e. plain validation failures.
func BindIfFailWithoutException[T any](input rop.Result[T],
	onFail func(d rop.ErrorsDetails) rop.Result[T]) rop.Result[T] {

	return BindIfFail(input, func(d rop.ErrorsDetails) rop.Result[T] {
		if d.HasException() {
			return input
		}
		return onFail(d)
	})
}
