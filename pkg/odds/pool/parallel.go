package pool

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/odds/pkg/odds"
	"github.com/ib-77/odds/pkg/odds/core"
)

// cancelCheckEvery is how many partial states a fold step extends between
// context checks.
const cancelCheckEvery = 1 << 12

// DropContext computes the same distribution as Drop. The fold is split by
// the outcomes of the first die and the parts run on at most
// core.Workers(ctx, GOMAXPROCS) goroutines. It returns ctx.Err() if the
// context ends first.
func DropContext[T odds.Number](ctx context.Context, dists []odds.Distribution[T], amount int,
	dropType DropType) (odds.Distribution[T], error) {

	if err := ctx.Err(); err != nil {
		return odds.Distribution[T]{}, err
	}
	if len(dists) == 0 {
		return odds.Empty[T](), nil
	}
	amount = max(amount, 0)

	heads := dists[0].Probabilities()
	rest := dists[1:]
	parts := make([][]odds.Probability[T], len(heads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(core.Workers(ctx, runtime.GOMAXPROCS(0)))

	for i, head := range heads {
		g.Go(func() error {
			held, kept := push(nil, 0, head.Value, amount, dropType)
			start := []partial[T]{{held: held, kept: kept, chance: head.Chance}}

			states, err := fold(gctx, start, rest, amount, dropType)
			if err != nil {
				return err
			}
			parts[i] = outcomes(states)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return odds.Distribution[T]{}, err
	}
	return odds.FromProbabilities(slices.Concat(parts...)), nil
}
