package action

import (
	"context"
	"fmt"
)

// Converter maps an input value to the value expected by the next unit.
type Converter[In, Out any] interface {
	Process(ctx context.Context, in In) (Out, error)
}

// AsyncConverter maps an input value to the value expected by the next
// unit, asynchronously.
type AsyncConverter[In, Out any] interface {
	ProcessAsync(ctx context.Context, in In) Future[Out]
}

var (
	_ Converter[typ, typ]       = ConverterFunc[typ, typ](nil)
	_ AsyncConverter[typ, typ]  = ConverterFunc[typ, typ](nil)
	_ AsyncConverter[typ, typ]  = AsyncConverterFunc[typ, typ](nil)
	_ Converter[typ, Void]      = Discard[typ]{}
	_ AsyncConverter[typ, Void] = Discard[typ]{}
	_ Converter[typ, typ]       = AnyConverter[typ, typ]{}
	_ AsyncConverter[typ, typ]  = AnyConverter[typ, typ]{}
	_ AsyncConverter[typ, typ]  = AnyAsyncConverter[typ, typ]{}
)

// Discard is the default converter for a void output: it ignores its input
// and returns immediately. Embed it in a type to inherit the no-op, and
// declare Process or ProcessAsync on that type to override it.
type Discard[In any] struct{}

// Process does nothing.
func (Discard[In]) Process(context.Context, In) (Void, error) {
	return Void{}, nil
}

// ProcessAsync does nothing and returns a resolved future.
func (Discard[In]) ProcessAsync(context.Context, In) Future[Void] {
	return Ready(Void{}, nil)
}

// ConverterFunc is an adapter to allow the use of ordinary functions as converters.
type ConverterFunc[In, Out any] func(context.Context, In) (Out, error)

// Process calls f(ctx, in).
func (f ConverterFunc[In, Out]) Process(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// ProcessAsync calls f(ctx, in) and returns its outcome as a resolved future.
func (f ConverterFunc[In, Out]) ProcessAsync(ctx context.Context, in In) Future[Out] {
	return Ready[Out](f(ctx, in))
}

// String returns the name of the function.
func (f ConverterFunc[In, Out]) String() string {
	return fmt.Sprintf("ConverterFunc[%s, %s]", typeName[In](), typeName[Out]())
}

// AsyncConverterFunc is an adapter to allow the use of ordinary functions as
// asynchronous converters.
type AsyncConverterFunc[In, Out any] func(context.Context, In) Future[Out]

// ProcessAsync calls f(ctx, in).
func (f AsyncConverterFunc[In, Out]) ProcessAsync(ctx context.Context, in In) Future[Out] {
	return f(ctx, in)
}

// String returns the name of the function.
func (f AsyncConverterFunc[In, Out]) String() string {
	return fmt.Sprintf("AsyncConverterFunc[%s, %s]", typeName[In](), typeName[Out]())
}

// AnyConverter is a type-erased synchronous converter.
type AnyConverter[In, Out any] struct {
	fn func(context.Context, In) (Out, error)
}

// AnyConverterOf erases the concrete type of c.
func AnyConverterOf[In, Out any](c Converter[In, Out]) AnyConverter[In, Out] {
	switch c := c.(type) {
	case nil:
		return AnyConverter[In, Out]{}
	case AnyConverter[In, Out]:
		return c
	default:
		return AnyConverter[In, Out]{fn: c.Process}
	}
}

// Process runs the captured converter.
func (c AnyConverter[In, Out]) Process(ctx context.Context, in In) (Out, error) {
	if c.fn == nil {
		var zero Out
		return zero, ErrNilAction
	}
	return c.fn(ctx, in)
}

// ProcessAsync runs the captured converter and returns a resolved future.
func (c AnyConverter[In, Out]) ProcessAsync(ctx context.Context, in In) Future[Out] {
	return Ready[Out](c.Process(ctx, in))
}

func (c AnyConverter[In, Out]) valid() bool { return c.fn != nil }

// Async returns c as an asynchronous converter.
func (c AnyConverter[In, Out]) Async() AnyAsyncConverter[In, Out] {
	return AnyAsyncConverter[In, Out]{fn: c.ProcessAsync}
}

// AnyAsyncConverter is a type-erased asynchronous converter.
type AnyAsyncConverter[In, Out any] struct {
	fn func(context.Context, In) Future[Out]
}

// AnyAsyncConverterOf erases the concrete type of c.
func AnyAsyncConverterOf[In, Out any](c AsyncConverter[In, Out]) AnyAsyncConverter[In, Out] {
	switch c := c.(type) {
	case nil:
		return AnyAsyncConverter[In, Out]{}
	case AnyAsyncConverter[In, Out]:
		return c
	default:
		return AnyAsyncConverter[In, Out]{fn: c.ProcessAsync}
	}
}

// ProcessAsync runs the captured converter.
func (c AnyAsyncConverter[In, Out]) ProcessAsync(ctx context.Context, in In) Future[Out] {
	if c.fn == nil {
		var zero Out
		return Ready(zero, ErrNilAction)
	}
	return c.fn(ctx, in)
}

func (c AnyAsyncConverter[In, Out]) valid() bool { return c.fn != nil }

// LiftConverter adapts a synchronous converter to the asynchronous contract.
func LiftConverter[In, Out any](c Converter[In, Out]) AnyAsyncConverter[In, Out] {
	return AnyConverterOf(c).Async()
}
