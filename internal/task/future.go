// Package task provides a single-assignment future for running long-latency
// operations off the interactive thread. The foreground thread never blocks:
// it either polls or selects on Done alongside its own event source.
package task

import "context"

// Result carries the outcome of a completed operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Future delivers exactly one Result. Safe to await or poll from any
// goroutine; the value is buffered so the worker never blocks on delivery.
type Future[T any] struct {
	ch   chan Result[T]
	done chan struct{}
	res  Result[T]
}

// Go runs fn on a background goroutine and returns a future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{ch: make(chan Result[T], 1), done: make(chan struct{})}
	go func() {
		v, err := fn()
		f.res = Result[T]{Value: v, Err: err}
		close(f.done)
		f.ch <- f.res
	}()
	return f
}

// Done returns a channel that receives the result once.
func (f *Future[T]) Done() <-chan Result[T] { return f.ch }

// Await blocks until the result is available or ctx is cancelled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.res.Value, f.res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Poll returns the result without blocking; ok is false while the operation
// is still in flight.
func (f *Future[T]) Poll() (Result[T], bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		return Result[T]{}, false
	}
}
