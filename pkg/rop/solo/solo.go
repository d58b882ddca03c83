package solo

import (
	"github.com/ib-77/fallible/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](errs ...error) rop.Result[T] {
	return rop.Err[T](errs...)
}

// Match evaluates exactly one of the branches depending on the state of input.
func Match[T, R any](input rop.Result[T],
	onValid func(v T) R,
	onFail func(d rop.ErrorsDetails) R) R {

	if v, ok := input.Get(); ok {
		return onValid(v)
	}
	return onFail(input.Details())
}

// failed returns an onFail branch that re-types the failure of input
// without touching its details.
func failed[In, Out any](input rop.Result[In]) func(rop.ErrorsDetails) rop.Result[Out] {
	return func(rop.ErrorsDetails) rop.Result[Out] {
		return rop.FailFrom[In, Out](input)
	}
}

func Map[In, Out any](input rop.Result[In],
	onValid func(v In) Out) rop.Result[Out] {

	return Match(input, func(v In) rop.Result[Out] {
		return rop.Ok(onValid(v))
	}, failed[In, Out](input))
}

func Bind[In, Out any](input rop.Result[In],
	onValid func(v In) rop.Result[Out]) rop.Result[Out] {

	return Match(input, onValid, failed[In, Out](input))
}

// BindWithValue is Bind that stashes the input value into the failure
// details when onValid fails, so that BindIfFailWithValue can recover from it.
func BindWithValue[In, Out any](input rop.Result[In],
	onValid func(v In) rop.Result[Out]) rop.Result[Out] {

	return Bind(input, func(v In) rop.Result[Out] {
		return withValue(onValid(v), v)
	})
}

// MapEnsure keeps a valid input when predicate holds and otherwise fails with
// the error built from the value. Failed inputs pass through.
func MapEnsure[T any](input rop.Result[T],
	predicate func(v T) bool,
	errorBuilder func(v T) rop.Error) rop.Result[T] {

	return Bind(input, func(v T) rop.Result[T] {
		if predicate(v) {
			return input
		}
		return rop.ErrDetails[T](rop.NewErrorsDetails(errorBuilder(v)))
	})
}

// MapEnsureWithValue is MapEnsure that stashes the rejected value.
func MapEnsureWithValue[T any](input rop.Result[T],
	predicate func(v T) bool,
	errorBuilder func(v T) rop.Error) rop.Result[T] {

	res := MapEnsure(input, predicate, errorBuilder)
	if v, ok := input.Get(); ok {
		return withValue(res, v)
	}
	return res
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input rop.Result[T],
	validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {

	return Bind(input, func(v T) rop.Result[T] {
		if isValid, errMsg := validate(v); !isValid {
			return rop.ErrMessage[T](errMsg)
		}
		return input
	})
}

// MapIf evaluates predicate on a valid value and maps it with onTrue or
// onFalse. A failed input short-circuits without calling predicate.
func MapIf[In, Out any](input rop.Result[In],
	predicate func(v In) bool,
	onTrue func(v In) Out,
	onFalse func(v In) Out) rop.Result[Out] {

	return Map(input, func(v In) Out {
		if predicate(v) {
			return onTrue(v)
		}
		return onFalse(v)
	})
}

// BindIf is the Bind form of MapIf.
func BindIf[In, Out any](input rop.Result[In],
	predicate func(v In) bool,
	onTrue func(v In) rop.Result[Out],
	onFalse func(v In) rop.Result[Out]) rop.Result[Out] {

	return Bind(input, func(v In) rop.Result[Out] {
		if predicate(v) {
			return onTrue(v)
		}
		return onFalse(v)
	})
}

// Tee calls onValid for a valid input and returns input unchanged.
func Tee[T any](input rop.Result[T], onValid func(v T)) rop.Result[T] {
	return Match(input, func(v T) rop.Result[T] {
		onValid(v)
		return input
	}, func(rop.ErrorsDetails) rop.Result[T] {
		return input
	})
}

func withValue[T, V any](res rop.Result[T], v V) rop.Result[T] {
	if res.IsValid() {
		return res
	}
	return rop.ErrDetails[T](rop.WithValue(res.Details(), v))
}
