package action

import (
	"context"
	"fmt"
)

// ActionFunc is an adapter to allow the use of ordinary functions as actions.
type ActionFunc[In any] func(context.Context, In) error

// Invoke calls f(ctx, in).
func (f ActionFunc[In]) Invoke(ctx context.Context, in In) error {
	return f(ctx, in)
}

// InvokeAsync calls f(ctx, in) and returns its outcome as a resolved future.
func (f ActionFunc[In]) InvokeAsync(ctx context.Context, in In) Future[Void] {
	return Ready(Void{}, f(ctx, in))
}

// String returns the name of the function.
func (f ActionFunc[In]) String() string {
	return fmt.Sprintf("ActionFunc[%s]", typeName[In]())
}

// AsyncActionFunc is an adapter to allow the use of ordinary functions as
// asynchronous actions.
type AsyncActionFunc[In any] func(context.Context, In) Future[Void]

// InvokeAsync calls f(ctx, in).
func (f AsyncActionFunc[In]) InvokeAsync(ctx context.Context, in In) Future[Void] {
	return f(ctx, in)
}

// String returns the name of the function.
func (f AsyncActionFunc[In]) String() string {
	return fmt.Sprintf("AsyncActionFunc[%s]", typeName[In]())
}

// ResultFunc is an adapter to allow the use of ordinary functions as result actions.
type ResultFunc[In, Out any] func(context.Context, In) (Out, error)

// Invoke calls f(ctx, in).
func (f ResultFunc[In, Out]) Invoke(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// InvokeAsync calls f(ctx, in) and returns its outcome as a resolved future.
func (f ResultFunc[In, Out]) InvokeAsync(ctx context.Context, in In) Future[Out] {
	return Ready[Out](f(ctx, in))
}

// String returns the name of the function.
func (f ResultFunc[In, Out]) String() string {
	return fmt.Sprintf("ResultFunc[%s, %s]", typeName[In](), typeName[Out]())
}

// AsyncResultFunc is an adapter to allow the use of ordinary functions as
// asynchronous result actions.
type AsyncResultFunc[In, Out any] func(context.Context, In) Future[Out]

// InvokeAsync calls f(ctx, in).
func (f AsyncResultFunc[In, Out]) InvokeAsync(ctx context.Context, in In) Future[Out] {
	return f(ctx, in)
}

// String returns the name of the function.
func (f AsyncResultFunc[In, Out]) String() string {
	return fmt.Sprintf("AsyncResultFunc[%s, %s]", typeName[In](), typeName[Out]())
}
