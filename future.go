package action

import (
	"context"
	"sync"
)

// Future is the pending result of an asynchronous invocation.
type Future[T any] interface {
	// Await blocks until the result is available or ctx is done.
	Await(ctx context.Context) (T, error)
}

var (
	_ Future[typ] = ready[typ]{}
	_ Future[typ] = (*deferred[typ])(nil)
	_ Future[typ] = (*promise[typ])(nil)
)

type ready[T any] struct {
	val T
	err error
}

// Ready returns a future that is already resolved with v and err.
// Awaiting it never blocks.
func Ready[T any](v T, err error) Future[T] {
	return ready[T]{val: v, err: err}
}

func (r ready[T]) Await(context.Context) (T, error) {
	return r.val, r.err
}

type deferred[T any] struct {
	once     sync.Once
	fn       func(context.Context) (T, error)
	val      T
	err      error
	panicked bool
	pval     any
}

// Defer returns a lazy future. The first call to Await runs fn with the
// awaiting context; every later call observes the same outcome. If fn
// panics, every call to Await panics with the same value.
func Defer[T any](fn func(context.Context) (T, error)) Future[T] {
	return &deferred[T]{fn: fn}
}

func (d *deferred[T]) Await(ctx context.Context) (T, error) {
	d.once.Do(func() {
		defer func() {
			d.fn = nil
			if r := recover(); r != nil {
				d.panicked, d.pval = true, r
			}
		}()
		d.val, d.err = d.fn(ctx)
	})
	if d.panicked {
		panic(d.pval)
	}
	return d.val, d.err
}

type promise[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on a new goroutine and returns a future for its result.
// Await returns ctx.Err() if the awaiting context ends first; fn keeps
// running until it returns on its own.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) Future[T] {
	p := &promise[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.val, p.err = fn(ctx)
	}()
	return p
}

func (p *promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
