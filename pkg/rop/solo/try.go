package solo

import (
	"github.com/ib-77/fallible/pkg/rop"
)

// DefaultFaultMessage is the error message of a captured fault when no
// message builder is configured.
const DefaultFaultMessage = "an unexpected fault occurred during execution"

type tryOptions struct {
	buildMessage func(fault error) string
}

type TryOption func(*tryOptions)

// WithMessage sets a fixed message for captured faults.
func WithMessage(message string) TryOption {
	return func(o *tryOptions) {
		o.buildMessage = func(error) string { return message }
	}
}

// WithMessageBuilder derives the message of a captured fault from the fault.
func WithMessageBuilder(build func(fault error) string) TryOption {
	return func(o *tryOptions) {
		if build != nil {
			o.buildMessage = build
		}
	}
}

func newTryOptions(opts []TryOption) tryOptions {
	o := tryOptions{
		buildMessage: func(error) string { return DefaultFaultMessage },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Fault builds the failure produced by the Try family for a captured fault:
// a single error with the built message and the fault stashed as exception.
func Fault[T any](fault error, opts ...TryOption) rop.Result[T] {
	o := newTryOptions(opts)
	message := o.buildMessage(fault)
	rop.Logger().Debug("captured fault", "message", message, "fault", fault)
	return rop.ErrDetails[T](rop.NewErrorsDetails(rop.WrapError(fault, message)).WithException(fault))
}

func capture[T any](f func() rop.Result[T], opts []TryOption) (res rop.Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fault[T](rop.NewPanicError(v), opts...)
		}
	}()
	return f()
}

// TryRun calls f and wraps its value. A panic inside f becomes a failure.
func TryRun[T any](f func() T, opts ...TryOption) rop.Result[T] {
	return capture(func() rop.Result[T] {
		return rop.Ok(f())
	}, opts)
}

// TryRunResult calls f and passes its Result through. A panic inside f
// becomes a failure.
func TryRunResult[T any](f func() rop.Result[T], opts ...TryOption) rop.Result[T] {
	return capture(f, opts)
}

// TryRunE calls a (value, error) function. Both a returned error and a panic
// are captured as faults.
func TryRunE[T any](f func() (T, error), opts ...TryOption) rop.Result[T] {
	return capture(func() rop.Result[T] {
		v, err := f()
		if !rop.IsNil(err) {
			return Fault[T](err, opts...)
		}
		return rop.Ok(v)
	}, opts)
}

// TryMatch is Match with both branches guarded against panics.
func TryMatch[T, R any](input rop.Result[T],
	onValid func(v T) R,
	onFail func(d rop.ErrorsDetails) R,
	opts ...TryOption) rop.Result[R] {

	return capture(func() rop.Result[R] {
		return rop.Ok(Match(input, onValid, onFail))
	}, opts)
}

func TryMap[In, Out any](input rop.Result[In],
	onValid func(v In) Out,
	opts ...TryOption) rop.Result[Out] {

	return Bind(input, func(v In) rop.Result[Out] {
		return TryRun(func() Out { return onValid(v) }, opts...)
	})
}

func TryBind[In, Out any](input rop.Result[In],
	onValid func(v In) rop.Result[Out],
	opts ...TryOption) rop.Result[Out] {

	return Bind(input, func(v In) rop.Result[Out] {
		return TryRunResult(func() rop.Result[Out] { return onValid(v) }, opts...)
	})
}

func TryBindE[In, Out any](input rop.Result[In],
	onValid func(v In) (Out, error),
	opts ...TryOption) rop.Result[Out] {

	return Bind(input, func(v In) rop.Result[Out] {
		return TryRunE(func() (Out, error) { return onValid(v) }, opts...)
	})
}

// TryBindWithValue is TryBind that also stashes the input value on failure.
func TryBindWithValue[In, Out any](input rop.Result[In],
	onValid func(v In) rop.Result[Out],
	opts ...TryOption) rop.Result[Out] {

	return BindWithValue(input, func(v In) rop.Result[Out] {
		return TryRunResult(func() rop.Result[Out] { return onValid(v) }, opts...)
	})
}
