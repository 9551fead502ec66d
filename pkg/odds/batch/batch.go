package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/ib-77/odds/pkg/odds/core"
	"github.com/ib-77/odds/pkg/odds/notation"
)

// Evaluate parses and evaluates every expression on
// core.Workers(ctx, GOMAXPROCS) lines per stage. The i-th result belongs to
// expressions[i].
func Evaluate(ctx context.Context, expressions []string) []Result[Report] {
	inputs := make([]Result[string], len(expressions))
	order := make(map[uuid.UUID]int, len(expressions))
	for i, raw := range expressions {
		inputs[i] = Success(raw)
		order[inputs[i].Id()] = i
	}

	lines := core.Workers(ctx, runtime.GOMAXPROCS(0))
	slog.DebugContext(ctx, "batch started", "expressions", len(expressions), "lines", lines)

	collected := core.FromChanMany(ctx,
		core.Run(ctx,
			core.Run(ctx,
				core.ToChanMany(ctx, inputs),
				Try(parse), logCancelled[string], lines),
			Try(evaluate), logCancelled[notation.Expression], lines),
	)

	out := make([]Result[Report], len(expressions))
	for _, r := range collected {
		out[order[r.Id()]] = r
	}

	cancelled := 0
	for i := range out {
		if out[i].IsEmpty() {
			out[i] = derive(inputs[i], Cancel[Report](cancellation(ctx)))
			cancelled++
		}
	}

	slog.DebugContext(ctx, "batch finished", "expressions", len(expressions), "cancelled", cancelled)
	return out
}

// Errors joins the errors of failed results, each prefixed with its
// position. It is nil when nothing failed; cancellations are not failures.
func Errors[T any](results []Result[T]) error {
	var errs []error
	for i, r := range results {
		if r.IsFailure() {
			errs = append(errs, fmt.Errorf("expression %d: %w", i+1, r.Err()))
		}
	}
	return errors.Join(errs...)
}

func parse(_ context.Context, raw string) (notation.Expression, error) {
	return notation.Parse(raw)
}

func evaluate(ctx context.Context, e notation.Expression) (Report, error) {
	d, err := e.DistributionContext(ctx)
	if err != nil {
		return Report{}, err
	}
	return NewReport(e, d), nil
}

func cancellation(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}
