package action

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
)

// Void is the output type of actions that only perform a side effect.
// It is an ordinary type argument: ResultAction[In, Void] is a valid result action.
type Void = struct{}

// Action performs a side effect for an input, synchronously.
type Action[In any] interface {
	Invoke(ctx context.Context, in In) error
}

// AsyncAction performs a side effect for an input, asynchronously.
type AsyncAction[In any] interface {
	InvokeAsync(ctx context.Context, in In) Future[Void]
}

// ResultAction produces an output for an input, synchronously.
type ResultAction[In, Out any] interface {
	Invoke(ctx context.Context, in In) (Out, error)
}

// AsyncResultAction produces an output for an input, asynchronously.
type AsyncResultAction[In, Out any] interface {
	InvokeAsync(ctx context.Context, in In) Future[Out]
}

type typ struct{}

var (
	_ Action[typ]                 = ActionFunc[typ](nil)
	_ AsyncAction[typ]            = ActionFunc[typ](nil)
	_ AsyncAction[typ]            = AsyncActionFunc[typ](nil)
	_ ResultAction[typ, typ]      = ResultFunc[typ, typ](nil)
	_ AsyncResultAction[typ, typ] = ResultFunc[typ, typ](nil)
	_ AsyncResultAction[typ, typ] = AsyncResultFunc[typ, typ](nil)

	_ Action[typ]                 = AnyAction[typ]{}
	_ AsyncAction[typ]            = AnyAction[typ]{}
	_ AsyncAction[typ]            = AnyAsyncAction[typ]{}
	_ ResultAction[typ, typ]      = AnyResultAction[typ, typ]{}
	_ AsyncResultAction[typ, typ] = AnyResultAction[typ, typ]{}
	_ AsyncResultAction[typ, typ] = AnyAsyncResultAction[typ, typ]{}

	_ Action[typ]                   = (*Group[typ])(nil)
	_ AsyncAction[typ]              = (*Group[typ])(nil)
	_ AsyncAction[typ]              = (*AsyncGroup[typ])(nil)
	_ ResultAction[typ, []typ]      = (*ResultGroup[typ, typ])(nil)
	_ AsyncResultAction[typ, []typ] = (*ResultGroup[typ, typ])(nil)
	_ AsyncResultAction[typ, []typ] = (*AsyncResultGroup[typ, typ])(nil)
)

// LiftAction adapts a synchronous action to the asynchronous contract.
// The returned action runs a to completion inside InvokeAsync and never suspends.
func LiftAction[In any](a Action[In]) AnyAsyncAction[In] {
	return AnyOf(a).Async()
}

// LiftResult adapts a synchronous result action to the asynchronous contract.
func LiftResult[In, Out any](a ResultAction[In, Out]) AnyAsyncResultAction[In, Out] {
	return AnyResultOf(a).Async()
}

var importPath = regexp.MustCompile(`[\w.\-]+/`)

// Name returns the type name of v. Type arguments are qualified by their
// package name only, the way %T prints them.
func Name(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return importPath.ReplaceAllString(t.Name(), "")
}

func typeName[T any]() string {
	var z [0]T // zero alloc
	return fmt.Sprintf("%v", reflect.TypeOf(z).Elem())
}
