package action

import "context"

// Prepend returns an action that runs c and passes its output to a.
// If c fails, a is not invoked and the error of c is returned.
func Prepend[In2, In any](a Action[In], c Converter[In2, In]) AnyAction[In2] {
	dst, src := AnyOf(a), AnyConverterOf(c)
	return AnyAction[In2]{fn: func(ctx context.Context, in In2) error {
		v, err := src.Process(ctx, in)
		if err != nil {
			return err
		}
		return dst.Invoke(ctx, v)
	}}
}

// PrependAction returns an action that runs the upstream action u and
// passes its output to a.
func PrependAction[In2, In any](a Action[In], u ResultAction[In2, In]) AnyAction[In2] {
	dst, src := AnyOf(a), AnyResultOf(u)
	return AnyAction[In2]{fn: func(ctx context.Context, in In2) error {
		v, err := src.Invoke(ctx, in)
		if err != nil {
			return err
		}
		return dst.Invoke(ctx, v)
	}}
}

// PrependResult returns a result action that runs c and passes its output to a.
func PrependResult[In2, In, Out any](a ResultAction[In, Out], c Converter[In2, In]) AnyResultAction[In2, Out] {
	dst, src := AnyResultOf(a), AnyConverterOf(c)
	return AnyResultAction[In2, Out]{fn: func(ctx context.Context, in In2) (Out, error) {
		v, err := src.Process(ctx, in)
		if err != nil {
			var zero Out
			return zero, err
		}
		return dst.Invoke(ctx, v)
	}}
}

// PrependResultAction returns a result action that runs the upstream action
// u and passes its output to a.
func PrependResultAction[In2, In, Out any](a ResultAction[In, Out], u ResultAction[In2, In]) AnyResultAction[In2, Out] {
	dst, src := AnyResultOf(a), AnyResultOf(u)
	return AnyResultAction[In2, Out]{fn: func(ctx context.Context, in In2) (Out, error) {
		v, err := src.Invoke(ctx, in)
		if err != nil {
			var zero Out
			return zero, err
		}
		return dst.Invoke(ctx, v)
	}}
}

// Append returns a result action that runs a and passes its output to the
// downstream action d.
func Append[In, Out, Out2 any](a ResultAction[In, Out], d ResultAction[Out, Out2]) AnyResultAction[In, Out2] {
	return PrependResultAction(d, a)
}

// AppendAction returns an action that runs a and passes its output to the
// downstream action d.
func AppendAction[In, Out any](a ResultAction[In, Out], d Action[Out]) AnyAction[In] {
	return PrependAction(d, a)
}

// AppendConverter returns a result action that runs a and maps its output
// with c. If a fails, c is not invoked.
func AppendConverter[In, Out, Out2 any](a ResultAction[In, Out], c Converter[Out, Out2]) AnyResultAction[In, Out2] {
	src, dst := AnyResultOf(a), AnyConverterOf(c)
	return AnyResultAction[In, Out2]{fn: func(ctx context.Context, in In) (Out2, error) {
		v, err := src.Invoke(ctx, in)
		if err != nil {
			var zero Out2
			return zero, err
		}
		return dst.Process(ctx, v)
	}}
}

// Async

// PrependAsync is the asynchronous form of Prepend. The composite is
// asynchronous as soon as one operand is; synchronous erasers and Func
// adapters can be passed as they are, other synchronous types through
// LiftAction and LiftConverter.
func PrependAsync[In2, In any](a AsyncAction[In], c AsyncConverter[In2, In]) AnyAsyncAction[In2] {
	dst, src := AnyAsyncOf(a), AnyAsyncConverterOf(c)
	return AnyAsyncAction[In2]{fn: func(ctx context.Context, in In2) Future[Void] {
		return Defer(func(actx context.Context) (Void, error) {
			v, err := src.ProcessAsync(ctx, in).Await(actx)
			if err != nil {
				return Void{}, err
			}
			return dst.InvokeAsync(ctx, v).Await(actx)
		})
	}}
}

// PrependActionAsync is the asynchronous form of PrependAction.
func PrependActionAsync[In2, In any](a AsyncAction[In], u AsyncResultAction[In2, In]) AnyAsyncAction[In2] {
	dst, src := AnyAsyncOf(a), AnyAsyncResultOf(u)
	return AnyAsyncAction[In2]{fn: func(ctx context.Context, in In2) Future[Void] {
		return Defer(func(actx context.Context) (Void, error) {
			v, err := src.InvokeAsync(ctx, in).Await(actx)
			if err != nil {
				return Void{}, err
			}
			return dst.InvokeAsync(ctx, v).Await(actx)
		})
	}}
}

// PrependResultAsync is the asynchronous form of PrependResult.
func PrependResultAsync[In2, In, Out any](a AsyncResultAction[In, Out], c AsyncConverter[In2, In]) AnyAsyncResultAction[In2, Out] {
	dst, src := AnyAsyncResultOf(a), AnyAsyncConverterOf(c)
	return AnyAsyncResultAction[In2, Out]{fn: func(ctx context.Context, in In2) Future[Out] {
		return Defer(func(actx context.Context) (Out, error) {
			v, err := src.ProcessAsync(ctx, in).Await(actx)
			if err != nil {
				var zero Out
				return zero, err
			}
			return dst.InvokeAsync(ctx, v).Await(actx)
		})
	}}
}

// PrependResultActionAsync is the asynchronous form of PrependResultAction.
func PrependResultActionAsync[In2, In, Out any](a AsyncResultAction[In, Out], u AsyncResultAction[In2, In]) AnyAsyncResultAction[In2, Out] {
	dst, src := AnyAsyncResultOf(a), AnyAsyncResultOf(u)
	return AnyAsyncResultAction[In2, Out]{fn: func(ctx context.Context, in In2) Future[Out] {
		return Defer(func(actx context.Context) (Out, error) {
			v, err := src.InvokeAsync(ctx, in).Await(actx)
			if err != nil {
				var zero Out
				return zero, err
			}
			return dst.InvokeAsync(ctx, v).Await(actx)
		})
	}}
}

// AppendAsync is the asynchronous form of Append.
func AppendAsync[In, Out, Out2 any](a AsyncResultAction[In, Out], d AsyncResultAction[Out, Out2]) AnyAsyncResultAction[In, Out2] {
	return PrependResultActionAsync(d, a)
}

// AppendActionAsync is the asynchronous form of AppendAction.
func AppendActionAsync[In, Out any](a AsyncResultAction[In, Out], d AsyncAction[Out]) AnyAsyncAction[In] {
	return PrependActionAsync(d, a)
}

// AppendConverterAsync is the asynchronous form of AppendConverter.
func AppendConverterAsync[In, Out, Out2 any](a AsyncResultAction[In, Out], c AsyncConverter[Out, Out2]) AnyAsyncResultAction[In, Out2] {
	src, dst := AnyAsyncResultOf(a), AnyAsyncConverterOf(c)
	return AnyAsyncResultAction[In, Out2]{fn: func(ctx context.Context, in In) Future[Out2] {
		return Defer(func(actx context.Context) (Out2, error) {
			v, err := src.InvokeAsync(ctx, in).Await(actx)
			if err != nil {
				var zero Out2
				return zero, err
			}
			return dst.ProcessAsync(ctx, v).Await(actx)
		})
	}}
}
