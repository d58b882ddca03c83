package mass

import (
	"errors"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// ErrNoFailures is reported by FusionFailErrors when none of its inputs failed.
var ErrNoFailures = errors.New("mass: no failed results to fuse")

func outcomes[T any](results []rop.Result[T]) []rop.Outcome {
	out := make([]rop.Outcome, 0, len(results))
	for _, r := range results {
		out = append(out, r)
	}
	return out
}

// FusionFailErrors fuses the details of every failed result into one failure:
// errors are concatenated in input order and the side channel keeps the
// first payload seen. Without any failed input the result is a failure
// wrapping ErrNoFailures.
func FusionFailErrors[T any](results []rop.Result[T]) rop.Result[T] {
	fused, failed := rop.FuseFails(outcomes(results)...)
	if !failed {
		return rop.Err[T](rop.WrapError(ErrNoFailures, "no failed results found to fuse"))
	}
	return rop.ErrDetails[T](fused)
}

// FusionErrorsIfExists returns every value when all results are valid and
// the fusion of all failures otherwise.
func FusionErrorsIfExists[T any](results []rop.Result[T]) rop.Result[[]T] {
	if fused, failed := rop.FuseFails(outcomes(results)...); failed {
		return rop.ErrDetails[[]T](fused)
	}
	values := make([]T, 0, len(results))
	for _, r := range results {
		values = append(values, r.Value())
	}
	return rop.Ok(values)
}

// Sequence is the fail-fast counterpart of FusionErrorsIfExists: only the
// first failure is reported.
func Sequence[T any](results []rop.Result[T]) rop.Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFail() {
			return rop.FailFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rop.Ok(values)
}

// BindMulti calls every function with the valid value of input, in order and
// without stopping on failures. If any of them failed the result is the
// fusion of all failures and returnFunc is not called; otherwise returnFunc
// receives the values in function order.
func BindMulti[T, U, Out any](input rop.Result[T],
	returnFunc func(values []U) rop.Result[Out],
	funcs ...func(v T) rop.Result[U]) rop.Result[Out] {

	return solo.Bind(input, func(v T) rop.Result[Out] {
		results := make([]rop.Result[U], 0, len(funcs))
		for _, f := range funcs {
			results = append(results, f(v))
		}
		return solo.Bind(FusionErrorsIfExists(results), returnFunc)
	})
}

// BindMulti2 is BindMulti over two functions with different value types.
func BindMulti2[T, A, B, Out any](input rop.Result[T],
	returnFunc func(a A, b B) rop.Result[Out],
	fa func(v T) rop.Result[A],
	fb func(v T) rop.Result[B]) rop.Result[Out] {

	return solo.Bind(input, func(v T) rop.Result[Out] {
		ra, rb := fa(v), fb(v)
		if fused, failed := rop.FuseFails(ra, rb); failed {
			return rop.ErrDetails[Out](fused)
		}
		return returnFunc(ra.Value(), rb.Value())
	})
}

func BindMulti3[T, A, B, C, Out any](input rop.Result[T],
	returnFunc func(a A, b B, c C) rop.Result[Out],
	fa func(v T) rop.Result[A],
	fb func(v T) rop.Result[B],
	fc func(v T) rop.Result[C]) rop.Result[Out] {

	return solo.Bind(input, func(v T) rop.Result[Out] {
		ra, rb, rc := fa(v), fb(v), fc(v)
		if fused, failed := rop.FuseFails(ra, rb, rc); failed {
			return rop.ErrDetails[Out](fused)
		}
		return returnFunc(ra.Value(), rb.Value(), rc.Value())
	})
}
