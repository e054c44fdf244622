// Package async runs functions on their own goroutines and hands back futures
// to wait on.
package async

import (
	"context"
	"errors"
	"fmt"
)

// Future is the pending result of a function started by Async.
type Future[U any] struct {
	done   chan struct{}
	result U
	err    error
}

// Await blocks until the function has returned.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Done is closed once the function has returned.
func (f *Future[U]) Done() <-chan struct{} { return f.done }

func (f *Future[U]) run(fn func() (U, error)) {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			var zero U
			f.result, f.err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	f.result, f.err = fn()
}

// Async executes fn(ctx, param) on a new goroutine and returns its Future.
// fn is always called; it decides what a canceled ctx means. Callers that
// must not start work on a canceled ctx check it before calling Async.
// A panic in fn is recovered and reported as an error wrapping ErrPanic.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	go f.run(func() (U, error) { return fn(ctx, param) })
	return f
}

// WaitAll waits for every future, even after one has failed, and returns
// the results in input order. Errors from all failed futures are joined.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	errs := make([]error, len(futures))
	for i, f := range futures {
		results[i], errs[i] = f.Await()
	}
	return results, errors.Join(errs...)
}
