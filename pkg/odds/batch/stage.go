package batch

import (
	"context"
	"errors"
	"log/slog"
)

// Try lifts fn into an engine for core.Run. Failed and cancelled inputs
// pass through with their error. An error from fn fails the result, or
// cancels it when it is a context error. The output keeps the input's
// identity.
//
// The engine emits nothing when ctx has already ended, which the
// locomotive reports as a cancellation.
func Try[In, Out any](fn func(ctx context.Context, in In) (Out, error)) func(ctx context.Context,
	input Result[In]) <-chan Result[Out] {
	return func(ctx context.Context, input Result[In]) <-chan Result[Out] {
		out := make(chan Result[Out], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			out <- try(ctx, input, fn)
		}()

		return out
	}
}

func try[In, Out any](ctx context.Context, input Result[In],
	fn func(ctx context.Context, in In) (Out, error)) Result[Out] {

	switch {
	case input.IsCancel():
		return derive(input, Cancel[Out](input.Err()))
	case !input.IsSuccess():
		return derive(input, Fail[Out](input.Err()))
	}

	value, err := fn(ctx, input.Result())
	switch {
	case err == nil:
		return derive(input, Success(value))
	case IsCancellationError(err):
		return derive(input, Cancel[Out](err))
	default:
		return derive(input, Fail[Out](err))
	}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func logCancelled[T any](ctx context.Context, in Result[T]) {
	slog.DebugContext(ctx, "expression cancelled in flight", "id", in.Id(), "cause", context.Cause(ctx))
}
