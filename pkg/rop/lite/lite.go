package lite

import (
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/core"
	"github.com/ib-77/fallible/pkg/rop/mass"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// Lift awaits input and applies rule to its result on a new goroutine.
func Lift[In, Out any](input core.Future[In],
	rule func(r rop.Result[In]) rop.Result[Out]) core.Future[Out] {

	return core.Go(func() rop.Result[Out] {
		return rule(core.Await(input))
	})
}

// awaiting adapts an asynchronous continuation into a synchronous one.
func awaiting[In, Out any](f func(v In) core.Future[Out]) func(v In) rop.Result[Out] {
	return func(v In) rop.Result[Out] {
		return core.Await(f(v))
	}
}

func Map[In, Out any](input core.Future[In], onValid func(v In) Out) core.Future[Out] {
	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.Map(r, onValid)
	})
}

func Bind[In, Out any](input core.Future[In], onValid func(v In) rop.Result[Out]) core.Future[Out] {
	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(r, onValid)
	})
}

func BindAsync[In, Out any](input core.Future[In], onValid func(v In) core.Future[Out]) core.Future[Out] {
	return Bind(input, awaiting(onValid))
}

func BindWithValue[In, Out any](input core.Future[In], onValid func(v In) rop.Result[Out]) core.Future[Out] {
	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.BindWithValue(r, onValid)
	})
}

func MapEnsure[T any](input core.Future[T],
	predicate func(v T) bool,
	errorBuilder func(v T) rop.Error) core.Future[T] {

	return Lift(input, func(r rop.Result[T]) rop.Result[T] {
		return solo.MapEnsure(r, predicate, errorBuilder)
	})
}

func MapIf[In, Out any](input core.Future[In],
	predicate func(v In) bool,
	onTrue func(v In) Out,
	onFalse func(v In) Out) core.Future[Out] {

	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.MapIf(r, predicate, onTrue, onFalse)
	})
}

func BindIf[In, Out any](input core.Future[In],
	predicate func(v In) bool,
	onTrue func(v In) rop.Result[Out],
	onFalse func(v In) rop.Result[Out]) core.Future[Out] {

	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.BindIf(r, predicate, onTrue, onFalse)
	})
}

// TryRun runs f on a new goroutine; a panic inside f becomes a failure.
func TryRun[T any](f func() T, opts ...solo.TryOption) core.Future[T] {
	return core.Go(func() rop.Result[T] {
		return solo.TryRun(f, opts...)
	})
}

func TryMap[In, Out any](input core.Future[In],
	onValid func(v In) Out,
	opts ...solo.TryOption) core.Future[Out] {

	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.TryMap(r, onValid, opts...)
	})
}

func TryBind[In, Out any](input core.Future[In],
	onValid func(v In) rop.Result[Out],
	opts ...solo.TryOption) core.Future[Out] {

	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.TryBind(r, onValid, opts...)
	})
}

// TryBindE is TryBind over a (value, error) continuation; a returned error
// becomes the captured fault.
func TryBindE[In, Out any](input core.Future[In],
	onValid func(v In) (Out, error),
	opts ...solo.TryOption) core.Future[Out] {

	return Lift(input, func(r rop.Result[In]) rop.Result[Out] {
		return solo.TryBindE(r, onValid, opts...)
	})
}

// TryBindAsync guards the call of onValid. A panic raised on a goroutine that
// onValid starts itself is outside of that call and is not captured.
func TryBindAsync[In, Out any](input core.Future[In],
	onValid func(v In) core.Future[Out],
	opts ...solo.TryOption) core.Future[Out] {

	return TryBind(input, awaiting(onValid), opts...)
}

func BindIfFail[T any](input core.Future[T],
	onFail func(d rop.ErrorsDetails) rop.Result[T]) core.Future[T] {

	return Lift(input, func(r rop.Result[T]) rop.Result[T] {
		return solo.BindIfFail(r, onFail)
	})
}

func BindIfFailWithValue[T, V any](input core.Future[T],
	onFail func(v V) rop.Result[T]) core.Future[T] {

	return Lift(input, func(r rop.Result[T]) rop.Result[T] {
		return solo.BindIfFailWithValue(r, onFail)
	})
}

func BindIfFailWithException[T any](input core.Future[T],
	onFail func(fault error) rop.Result[T]) core.Future[T] {

	return Lift(input, func(r rop.Result[T]) rop.Result[T] {
		return solo.BindIfFailWithException(r, onFail)
	})
}

func BindIfFailWithoutException[T any](input core.Future[T],
	onFail func(d rop.ErrorsDetails) rop.Result[T]) core.Future[T] {

	return Lift(input, func(r rop.Result[T]) rop.Result[T] {
		return solo.BindIfFailWithoutException(r, onFail)
	})
}

// Match awaits input and delivers the value of the matching branch.
func Match[T, R any](input core.Future[T],
	onValid func(v T) R,
	onFail func(d rop.ErrorsDetails) R) <-chan R {

	out := make(chan R, 1)
	go func() {
		defer close(out)
		out <- solo.Match(core.Await(input), onValid, onFail)
	}()
	return out
}

// BindMulti awaits input, then calls and awaits every continuation in turn.
func BindMulti[T, U, Out any](input core.Future[T],
	returnFunc func(values []U) rop.Result[Out],
	funcs ...func(v T) core.Future[U]) core.Future[Out] {

	syncFuncs := make([]func(T) rop.Result[U], 0, len(funcs))
	for _, f := range funcs {
		syncFuncs = append(syncFuncs, awaiting(f))
	}
	return Lift(input, func(r rop.Result[T]) rop.Result[Out] {
		return mass.BindMulti(r, returnFunc, syncFuncs...)
	})
}

// FusionErrorsIfExists awaits every future in order and fuses the failures.
func FusionErrorsIfExists[T any](fs ...core.Future[T]) core.Future[[]T] {
	return core.Go(func() rop.Result[[]T] {
		return mass.FusionErrorsIfExists(core.AwaitAll(fs...))
	})
}
