package action

import (
	"context"
	"fmt"
)

// AnyAction is a type-erased synchronous action. It holds a single captured
// function and can be stored next to any other AnyAction of the same input
// type. The zero value fails every invocation with ErrNilAction.
type AnyAction[In any] struct {
	fn func(context.Context, In) error
}

// AnyOf erases the concrete type of a. The result behaves exactly like a for
// every input, failures included.
func AnyOf[In any](a Action[In]) AnyAction[In] {
	switch a := a.(type) {
	case nil:
		return AnyAction[In]{}
	case AnyAction[In]:
		return a
	case interface{ Any() AnyAction[In] }:
		return a.Any()
	default:
		return AnyAction[In]{fn: a.Invoke}
	}
}

// Invoke runs the captured action.
func (a AnyAction[In]) Invoke(ctx context.Context, in In) error {
	if a.fn == nil {
		return ErrNilAction
	}
	return a.fn(ctx, in)
}

// InvokeAsync runs the captured action and returns a resolved future.
func (a AnyAction[In]) InvokeAsync(ctx context.Context, in In) Future[Void] {
	return Ready(Void{}, a.Invoke(ctx, in))
}

// Async returns a as an asynchronous action.
func (a AnyAction[In]) Async() AnyAsyncAction[In] {
	return AnyAsyncAction[In]{fn: a.InvokeAsync}
}

// Group returns a new group whose only member is a.
func (a AnyAction[In]) Group() *Group[In] {
	return NewGroup[In](a)
}

func (a AnyAction[In]) valid() bool { return a.fn != nil }

func (a AnyAction[In]) String() string {
	return fmt.Sprintf("AnyAction[%s]", typeName[In]())
}

// AnyAsyncAction is a type-erased asynchronous action.
// The zero value fails every invocation with ErrNilAction.
type AnyAsyncAction[In any] struct {
	fn func(context.Context, In) Future[Void]
}

// AnyAsyncOf erases the concrete type of a.
func AnyAsyncOf[In any](a AsyncAction[In]) AnyAsyncAction[In] {
	switch a := a.(type) {
	case nil:
		return AnyAsyncAction[In]{}
	case AnyAsyncAction[In]:
		return a
	case interface{ Any() AnyAsyncAction[In] }:
		return a.Any()
	case interface{ Any() AnyAction[In] }:
		return a.Any().Async()
	default:
		return AnyAsyncAction[In]{fn: a.InvokeAsync}
	}
}

// InvokeAsync runs the captured action.
func (a AnyAsyncAction[In]) InvokeAsync(ctx context.Context, in In) Future[Void] {
	if a.fn == nil {
		return Ready(Void{}, ErrNilAction)
	}
	return a.fn(ctx, in)
}

// Group returns a new asynchronous group whose only member is a.
func (a AnyAsyncAction[In]) Group() *AsyncGroup[In] {
	return NewAsyncGroup[In](a)
}

func (a AnyAsyncAction[In]) valid() bool { return a.fn != nil }

func (a AnyAsyncAction[In]) String() string {
	return fmt.Sprintf("AnyAsyncAction[%s]", typeName[In]())
}

// AnyResultAction is a type-erased synchronous result action.
// The zero value fails every invocation with ErrNilAction.
type AnyResultAction[In, Out any] struct {
	fn func(context.Context, In) (Out, error)
}

// AnyResultOf erases the concrete type of a.
func AnyResultOf[In, Out any](a ResultAction[In, Out]) AnyResultAction[In, Out] {
	switch a := a.(type) {
	case nil:
		return AnyResultAction[In, Out]{}
	case AnyResultAction[In, Out]:
		return a
	case interface{ Any() AnyResultAction[In, Out] }:
		return a.Any()
	default:
		return AnyResultAction[In, Out]{fn: a.Invoke}
	}
}

// Invoke runs the captured action.
func (a AnyResultAction[In, Out]) Invoke(ctx context.Context, in In) (Out, error) {
	if a.fn == nil {
		var zero Out
		return zero, ErrNilAction
	}
	return a.fn(ctx, in)
}

// InvokeAsync runs the captured action and returns a resolved future.
func (a AnyResultAction[In, Out]) InvokeAsync(ctx context.Context, in In) Future[Out] {
	return Ready[Out](a.Invoke(ctx, in))
}

// Async returns a as an asynchronous result action.
func (a AnyResultAction[In, Out]) Async() AnyAsyncResultAction[In, Out] {
	return AnyAsyncResultAction[In, Out]{fn: a.InvokeAsync}
}

// EraseResult returns an action that runs a and drops its output.
func (a AnyResultAction[In, Out]) EraseResult() AnyAction[In] {
	return EraseResult[In, Out](a)
}

// Group returns a new result group whose only member is a.
func (a AnyResultAction[In, Out]) Group() *ResultGroup[In, Out] {
	return NewResultGroup[In, Out](a)
}

func (a AnyResultAction[In, Out]) valid() bool { return a.fn != nil }

func (a AnyResultAction[In, Out]) String() string {
	return fmt.Sprintf("AnyResultAction[%s, %s]", typeName[In](), typeName[Out]())
}

// AnyAsyncResultAction is a type-erased asynchronous result action.
// The zero value fails every invocation with ErrNilAction.
type AnyAsyncResultAction[In, Out any] struct {
	fn func(context.Context, In) Future[Out]
}

// AnyAsyncResultOf erases the concrete type of a.
func AnyAsyncResultOf[In, Out any](a AsyncResultAction[In, Out]) AnyAsyncResultAction[In, Out] {
	switch a := a.(type) {
	case nil:
		return AnyAsyncResultAction[In, Out]{}
	case AnyAsyncResultAction[In, Out]:
		return a
	case interface{ Any() AnyAsyncResultAction[In, Out] }:
		return a.Any()
	case interface{ Any() AnyResultAction[In, Out] }:
		return a.Any().Async()
	default:
		return AnyAsyncResultAction[In, Out]{fn: a.InvokeAsync}
	}
}

// InvokeAsync runs the captured action.
func (a AnyAsyncResultAction[In, Out]) InvokeAsync(ctx context.Context, in In) Future[Out] {
	if a.fn == nil {
		var zero Out
		return Ready(zero, ErrNilAction)
	}
	return a.fn(ctx, in)
}

// EraseResult returns an asynchronous action that runs a and drops its output.
func (a AnyAsyncResultAction[In, Out]) EraseResult() AnyAsyncAction[In] {
	return EraseResultAsync[In, Out](a)
}

// Group returns a new asynchronous result group whose only member is a.
func (a AnyAsyncResultAction[In, Out]) Group() *AsyncResultGroup[In, Out] {
	return NewAsyncResultGroup[In, Out](a)
}

func (a AnyAsyncResultAction[In, Out]) valid() bool { return a.fn != nil }

func (a AnyAsyncResultAction[In, Out]) String() string {
	return fmt.Sprintf("AnyAsyncResultAction[%s, %s]", typeName[In](), typeName[Out]())
}

// EraseResult returns an action that runs a and drops its output without
// inspecting it. Failures are returned unchanged.
func EraseResult[In, Out any](a ResultAction[In, Out]) AnyAction[In] {
	r := AnyResultOf(a)
	return AnyAction[In]{fn: func(ctx context.Context, in In) error {
		_, err := r.Invoke(ctx, in)
		return err
	}}
}

// EraseResultAsync is the asynchronous form of EraseResult.
func EraseResultAsync[In, Out any](a AsyncResultAction[In, Out]) AnyAsyncAction[In] {
	r := AnyAsyncResultOf(a)
	return AnyAsyncAction[In]{fn: func(ctx context.Context, in In) Future[Void] {
		return Defer(func(actx context.Context) (Void, error) {
			_, err := r.InvokeAsync(ctx, in).Await(actx)
			return Void{}, err
		})
	}}
}
