package action

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Middleware is a function that wraps a result action to add functionality,
// such as logging or tracing. Void actions use Middleware[In, Void].
type Middleware[In, Out any] func(next ResultAction[In, Out]) ResultAction[In, Out]

// MidFunc is an adapter to allow the use of ordinary functions as middleware.
type MidFunc[In, Out any] struct {
	Name string
	Next ResultAction[In, Out]
	Fn   func(context.Context, In) (Out, error)
}

// Invoke executes the function.
func (m *MidFunc[In, Out]) Invoke(ctx context.Context, in In) (Out, error) {
	return m.Fn(ctx, in)
}

// String returns the middleware name around the wrapped action.
func (m *MidFunc[In, Out]) String() string {
	return fmt.Sprintf("%s(%s)", m.Name, describe(m.Next))
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return Name(v)
}

// chain wraps a so that mid[0] is the outermost middleware.
func chain[In, Out any](a ResultAction[In, Out], mid []Middleware[In, Out]) ResultAction[In, Out] {
	for _, m := range slices.Backward(mid) {
		a = m(a)
	}
	return a
}

// Use returns a new action wrapped by mid. The first middleware is the outermost.
func (a AnyResultAction[In, Out]) Use(mid ...Middleware[In, Out]) AnyResultAction[In, Out] {
	return AnyResultOf(chain[In, Out](a, mid))
}

// Use returns a new action wrapped by mid. The first middleware is the outermost.
func (a AnyAction[In]) Use(mid ...Middleware[In, Void]) AnyAction[In] {
	return EraseResult(chain[In, Void](voidResult[In]{a: a}, mid))
}

// Use returns a new action wrapped by mid. The middleware observes the whole
// asynchronous invocation, up to the moment its future resolves.
func (a AnyAsyncResultAction[In, Out]) Use(mid ...Middleware[In, Out]) AnyAsyncResultAction[In, Out] {
	return AnyAsyncResultAction[In, Out]{fn: func(ctx context.Context, in In) Future[Out] {
		return Defer(func(actx context.Context) (Out, error) {
			return chain[In, Out](awaited[In, Out]{a: a, actx: actx}, mid).Invoke(ctx, in)
		})
	}}
}

// Use returns a new action wrapped by mid.
func (a AnyAsyncAction[In]) Use(mid ...Middleware[In, Void]) AnyAsyncAction[In] {
	return AnyAsyncAction[In]{fn: func(ctx context.Context, in In) Future[Void] {
		return Defer(func(actx context.Context) (Void, error) {
			return chain[In, Void](awaited[In, Void]{a: a, actx: actx}, mid).Invoke(ctx, in)
		})
	}}
}

type voidResult[In any] struct{ a AnyAction[In] }

func (v voidResult[In]) Invoke(ctx context.Context, in In) (Void, error) {
	return Void{}, v.a.Invoke(ctx, in)
}

func (v voidResult[In]) String() string { return v.a.String() }

// awaited presents an asynchronous action as a synchronous one that awaits
// with actx.
type awaited[In, Out any] struct {
	a    AsyncResultAction[In, Out]
	actx context.Context
}

func (w awaited[In, Out]) Invoke(ctx context.Context, in In) (Out, error) {
	return w.a.InvokeAsync(ctx, in).Await(w.actx)
}

func (w awaited[In, Out]) String() string { return describe(w.a) }

// UUIDMiddleware returns a middleware that assigns an id to each invocation.
// The id is stored in the context and can be read with GetInvocationID.
func UUIDMiddleware[In, Out any]() Middleware[In, Out] {
	return func(next ResultAction[In, Out]) ResultAction[In, Out] {
		return &MidFunc[In, Out]{
			Name: "UUID",
			Next: next,
			Fn: func(ctx context.Context, in In) (Out, error) {
				return next.Invoke(setInvocationID(ctx, nextID()), in)
			},
		}
	}
}

// LoggerMiddleware returns a middleware that logs each invocation using the
// provided slog.Logger.
func LoggerMiddleware[In, Out any](l *slog.Logger) Middleware[In, Out] {
	return func(next ResultAction[In, Out]) ResultAction[In, Out] {
		return &MidFunc[In, Out]{
			Name: "Logger",
			Next: next,
			Fn: func(ctx context.Context, in In) (Out, error) {
				start := time.Now()
				name := describe(next)
				attrs := []any{"action", name}
				if id, err := GetInvocationID(ctx); err == nil {
					attrs = append(attrs, "id", id)
				}
				l.InfoContext(ctx, "start", attrs...)
				out, err := next.Invoke(ctx, in)
				attrs = append(attrs, "duration", time.Since(start))
				if err != nil {
					l.ErrorContext(ctx, "failed", append(attrs, "err", err)...)
					return out, err
				}
				l.InfoContext(ctx, "done", append(attrs, "result", fmt.Sprintf("%v", out))...)
				return out, nil
			},
		}
	}
}

// PanicError is returned by RecoverMiddleware when the wrapped action panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("action panicked: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RecoverMiddleware returns a middleware that turns a panic in the wrapped
// action into a *PanicError.
func RecoverMiddleware[In, Out any]() Middleware[In, Out] {
	return func(next ResultAction[In, Out]) ResultAction[In, Out] {
		return &MidFunc[In, Out]{
			Name: "Recover",
			Next: next,
			Fn: func(ctx context.Context, in In) (out Out, err error) {
				defer func() {
					if r := recover(); r != nil {
						var zero Out
						out, err = zero, &PanicError{Value: r, Stack: debug.Stack()}
					}
				}()
				return next.Invoke(ctx, in)
			},
		}
	}
}

// TraceConfig defines the configuration for the tracing middleware.
type TraceConfig struct {
	// Tracer starts the spans. Default is the tracer of the global provider.
	Tracer trace.Tracer

	// SpanName names every span. If empty, the name of the wrapped action is used.
	SpanName string
}

// DefaultTraceConfig returns a tracing configuration using the global
// OpenTelemetry provider.
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		Tracer: otel.Tracer("github.com/veggiemonk/action"),
	}
}

// TraceMiddleware returns a middleware that records one span per invocation.
// Failed invocations record the error and set the span status to Error.
func TraceMiddleware[In, Out any](config TraceConfig) Middleware[In, Out] {
	if config.Tracer == nil {
		config.Tracer = DefaultTraceConfig().Tracer
	}
	return func(next ResultAction[In, Out]) ResultAction[In, Out] {
		name := describe(next)
		spanName := config.SpanName
		if spanName == "" {
			spanName = name
		}
		return &MidFunc[In, Out]{
			Name: "Trace",
			Next: next,
			Fn: func(ctx context.Context, in In) (Out, error) {
				ctx, span := config.Tracer.Start(ctx, spanName,
					trace.WithAttributes(attribute.String("action.type", name)))
				defer span.End()
				if id, err := GetInvocationID(ctx); err == nil {
					span.SetAttributes(attribute.String("action.invocation_id", id.String()))
				}
				out, err := next.Invoke(ctx, in)
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				}
				return out, err
			},
		}
	}
}
