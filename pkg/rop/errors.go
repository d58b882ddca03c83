package rop

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"
	"strings"
)

// ErrNotFound is reported when a side-channel payload was requested from an
// ErrorsDetails that does not carry it.
var ErrNotFound = errors.New("rop: not found")

// Error is the atomic unit of failure information.
type Error struct {
	Message string
	cause   error
}

func NewError(message string) Error {
	return Error{Message: message}
}

// WrapError builds an Error whose message is shown to callers while cause
// stays reachable through errors.Is / errors.As.
func WrapError(cause error, message string) Error {
	return Error{Message: message, cause: cause}
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Unwrap() error {
	return e.cause
}

func (e Error) LogValue() slog.Value {
	return slog.StringValue(e.Message)
}

// ErrorsDetails aggregates the errors of a failed Result together with the
// diagnostic side channel: the captured exception (if the failure came from a
// Try combinator) and the input value that was being processed (if a
// ...WithValue combinator stashed it).
//
// The side channel is read-only diagnostic data; it is never owned by the
// details value.
type ErrorsDetails struct {
	errors    []Error
	exception error
	input     any
	hasInput  bool
}

// NewErrorsDetails creates details from the given errors, in order.
func NewErrorsDetails(errs ...Error) ErrorsDetails {
	return ErrorsDetails{errors: append([]Error(nil), errs...)}
}

// DetailsFromMessages is a shortcut for NewErrorsDetails over plain messages.
func DetailsFromMessages(messages ...string) ErrorsDetails {
	errs := make([]Error, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, NewError(m))
	}
	return ErrorsDetails{errors: errs}
}

// DetailsFromError converts any Go error into details. Only a top-level
// ErrorsDetails or Error is taken as is. A joined error is split into its
// parts, each converted in turn, and anything else becomes a single Error
// wrapping it, so the message of a wrapping error is never lost.
func DetailsFromError(err error) ErrorsDetails {
	if IsNil(err) {
		return ErrorsDetails{}
	}
	switch e := err.(type) {
	case ErrorsDetails:
		return e
	case Error:
		return ErrorsDetails{errors: []Error{e}}
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return ErrorsDetails{errors: []Error{WrapError(err, err.Error())}}
	}
	details := make([]ErrorsDetails, 0, len(joined.Unwrap()))
	for _, p := range joined.Unwrap() {
		details = append(details, DetailsFromError(p))
	}
	return Fuse(details...)
}

// Errors returns a copy of the ordered error list.
func (d ErrorsDetails) Errors() []Error {
	return append([]Error(nil), d.errors...)
}

func (d ErrorsDetails) Messages() []string {
	messages := make([]string, 0, len(d.errors))
	for _, e := range d.errors {
		messages = append(messages, e.Message)
	}
	return messages
}

func (d ErrorsDetails) Len() int {
	return len(d.errors)
}

func (d ErrorsDetails) IsEmpty() bool {
	return len(d.errors) == 0
}

// Exception returns the captured fault, if any.
func (d ErrorsDetails) Exception() (error, bool) {
	return d.exception, d.exception != nil
}

func (d ErrorsDetails) HasException() bool {
	return d.exception != nil
}

func (d ErrorsDetails) HasValue() bool {
	return d.hasInput
}

// WithException returns a copy of d carrying err as the captured fault.
func (d ErrorsDetails) WithException(err error) ErrorsDetails {
	d.errors = d.Errors()
	d.exception = err
	return d
}

// WithErrors returns a copy of d with errs appended.
func (d ErrorsDetails) WithErrors(errs ...Error) ErrorsDetails {
	d.errors = append(d.Errors(), errs...)
	return d
}

// WithValue returns a copy of d carrying input as the value that was being
// processed when the failure happened. Any previously stashed value is
// replaced.
func WithValue[T any](d ErrorsDetails, input T) ErrorsDetails {
	d.errors = d.Errors()
	d.input = input
	d.hasInput = true
	return d
}

// LookupValue reads the stashed input value as T.
func LookupValue[T any](d ErrorsDetails) (T, bool) {
	var zero T
	if !d.hasInput {
		return zero, false
	}
	v, ok := d.input.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// StashedValue is the Result form of LookupValue; a miss is a Fail wrapping
// ErrNotFound.
func StashedValue[T any](d ErrorsDetails) Result[T] {
	if v, ok := LookupValue[T](d); ok {
		return Ok(v)
	}
	return Err[T](WrapError(ErrNotFound,
		fmt.Sprintf("value of type %s not found in errors details", reflect.TypeOf((*T)(nil)).Elem())))
}

// ExceptionOf is the Result form of Exception; a miss is a Fail wrapping
// ErrNotFound.
func ExceptionOf(d ErrorsDetails) Result[error] {
	if d.exception != nil {
		return Ok(d.exception)
	}
	return Err[error](WrapError(ErrNotFound, "exception not found in errors details"))
}

// Merge concatenates a's errors with b's. For the side channel the first
// payload wins: a's exception and value are kept when present, b's fill the
// gaps.
func Merge(a, b ErrorsDetails) ErrorsDetails {
	merged := ErrorsDetails{
		errors:    make([]Error, 0, len(a.errors)+len(b.errors)),
		exception: a.exception,
		input:     a.input,
		hasInput:  a.hasInput,
	}
	merged.errors = append(merged.errors, a.errors...)
	merged.errors = append(merged.errors, b.errors...)
	if merged.exception == nil {
		merged.exception = b.exception
	}
	if !merged.hasInput && b.hasInput {
		merged.input = b.input
		merged.hasInput = true
	}
	return merged
}

// Fuse folds Merge over details from left to right.
func Fuse(details ...ErrorsDetails) ErrorsDetails {
	if len(details) == 0 {
		return ErrorsDetails{}
	}
	fused := details[0]
	for _, d := range details[1:] {
		fused = Merge(fused, d)
	}
	Logger().Debug("fused errors details", "sources", len(details), "errors", fused.Len())
	return fused
}

func (d ErrorsDetails) Error() string {
	switch len(d.errors) {
	case 0:
		return "rop: failure without details"
	case 1:
		return d.errors[0].Message
	}
	return strings.Join(d.Messages(), "; ")
}

func (d ErrorsDetails) Unwrap() []error {
	errs := make([]error, 0, len(d.errors)+1)
	for _, e := range d.errors {
		errs = append(errs, e)
	}
	if d.exception != nil {
		errs = append(errs, d.exception)
	}
	return errs
}

func (d ErrorsDetails) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Any("errors", d.Messages())}
	if d.exception != nil {
		attrs = append(attrs, slog.String("exception", d.exception.Error()))
	}
	if d.hasInput {
		attrs = append(attrs, slog.String("value_type", fmt.Sprintf("%T", d.input)))
	}
	return slog.GroupValue(attrs...)
}

// PanicError is the fault recorded when a Try combinator recovers a panic.
type PanicError struct {
	Value any
	Stack []byte
}

func NewPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}
