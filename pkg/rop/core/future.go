package core

import (
	"errors"

	"github.com/ib-77/fallible/pkg/rop"
)

// ErrNoResult is reported when a future never received a result.
var ErrNoResult = errors.New("core: future closed without a result")

type state[T any] struct {
	done   chan struct{}
	result rop.Result[T]
}

// Future is a handle to one Result that is completed once and can be awaited
// any number of times, from any number of goroutines. Copies share the same
// result. The zero Future is completed with an ErrNoResult failure.
type Future[T any] struct {
	s *state[T]
}

func pending[T any]() (Future[T], func(rop.Result[T])) {
	s := &state[T]{done: make(chan struct{})}
	return Future[T]{s: s}, func(r rop.Result[T]) {
		s.result = r
		close(s.done)
	}
}

func noResult[T any]() rop.Result[T] {
	return rop.Err[T](rop.WrapError(ErrNoResult, "future closed without a result"))
}

// Resolve returns a future that is already completed with r.
func Resolve[T any](r rop.Result[T]) Future[T] {
	f, complete := pending[T]()
	complete(r)
	return f
}

// Ok is Resolve over a valid value.
func Ok[T any](v T) Future[T] {
	return Resolve(rop.Ok(v))
}

// Go runs produce on its own goroutine and returns the future of its Result.
// A panic inside produce is not recovered.
func Go[T any](produce func() rop.Result[T]) Future[T] {
	f, complete := pending[T]()
	go func() {
		complete(produce())
	}()
	return f
}

// FromChan completes the future with the first Result read from ch. A channel
// closed before delivering anything completes it with an ErrNoResult failure.
func FromChan[T any](ch <-chan rop.Result[T]) Future[T] {
	return Go(func() rop.Result[T] {
		r, ok := <-ch
		if !ok {
			return noResult[T]()
		}
		return r
	})
}

// Done is closed once the result is available.
func (f Future[T]) Done() <-chan struct{} {
	if f.s == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return f.s.done
}

// Await blocks until f completes and returns its result. Every call returns
// the same Result.
func Await[T any](f Future[T]) rop.Result[T] {
	if f.s == nil {
		return noResult[T]()
	}
	<-f.s.done
	return f.s.result
}

// AwaitAll awaits the futures one after another, in order.
func AwaitAll[T any](fs ...Future[T]) []rop.Result[T] {
	res := make([]rop.Result[T], 0, len(fs))
	for _, f := range fs {
		res = append(res, Await(f))
	}
	return res
}

// Collect drains a channel into a slice.
func Collect[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
