package pool

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/odds/pkg/odds"
)

// DropType selects which end of a sorted roll is discarded.
type DropType int

const (
	// DropHigh discards the highest results.
	DropHigh DropType = iota
	// DropLow discards the lowest results.
	DropLow
)

func (t DropType) String() string {
	switch t {
	case DropHigh:
		return "high"
	case DropLow:
		return "low"
	default:
		return fmt.Sprintf("DropType(%d)", int(t))
	}
}

// Drop rolls every distribution in dists once, discards the amount results
// selected by dropType and sums what is left.
//
// The dists are assumed independent. An empty pool gives the neutral
// distribution, amount <= 0 drops nothing and amount >= len(dists) drops
// everything, leaving a certain zero.
func Drop[T odds.Number](dists []odds.Distribution[T], amount int, dropType DropType) odds.Distribution[T] {
	if len(dists) == 0 {
		return odds.Empty[T]()
	}

	states, _ := fold(context.Background(), []partial[T]{{chance: 1}}, dists, max(amount, 0), dropType)
	return odds.FromProbabilities(outcomes(states))
}

// partial is the pool after some dice: the values that may still be
// dropped and the sum of those that no longer can.
type partial[T odds.Number] struct {
	held   []T // ascending, at most amount long
	kept   T
	chance float64
}

// stateKey identifies partials that lead to the same outcomes.
type stateKey[T odds.Number] struct {
	held string
	kept T
}

// fold adds dists to states one die at a time. It returns ctx.Err() once
// ctx ends, checked before every die and every cancelCheckEvery states.
func fold[T odds.Number](ctx context.Context, states []partial[T], dists []odds.Distribution[T], amount int,
	dropType DropType) ([]partial[T], error) {

	var err error
	for _, d := range dists {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if states, err = step(ctx, states, d, amount, dropType); err != nil {
			return nil, err
		}
	}
	return states, nil
}

func step[T odds.Number](ctx context.Context, states []partial[T], d odds.Distribution[T], amount int,
	dropType DropType) ([]partial[T], error) {

	faces := d.Probabilities()
	next := make([]partial[T], 0, len(states))
	index := make(map[stateKey[T]]int, len(states))
	var buf []byte

	for n, s := range states {
		if n%cancelCheckEvery == cancelCheckEvery-1 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		for _, p := range faces {
			held, kept := push(s.held, s.kept, p.Value, amount, dropType)
			chance := s.chance * p.Chance

			buf = encodeHeld(buf[:0], held)
			key := stateKey[T]{held: string(buf), kept: kept}
			if i, ok := index[key]; ok {
				next[i].chance += chance
				continue
			}
			index[key] = len(next)
			next = append(next, partial[T]{held: held, kept: kept, chance: chance})
		}
	}
	return next, nil
}

// encodeHeld appends an injective byte encoding of held to b. Values that
// survive a round trip through float64 take 9 bytes; others fall back to
// their decimal text.
func encodeHeld[T odds.Number](b []byte, held []T) []byte {
	for _, v := range held {
		if f := float64(v); T(f) == v {
			b = append(b, 0)
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
			continue
		}
		b = append(b, 1)
		b = fmt.Append(b, v)
		b = append(b, ';')
	}
	return b
}

func outcomes[T odds.Number](states []partial[T]) []odds.Probability[T] {
	out := make([]odds.Probability[T], len(states))
	for i, s := range states {
		out[i] = odds.Probability[T]{Value: s.kept, Chance: s.chance}
	}
	return out
}

// push adds value to the drop candidates. Once there are more than amount
// candidates the one that can no longer be dropped moves into kept.
// held is never modified.
func push[T odds.Number](held []T, kept, value T, amount int, dropType DropType) ([]T, T) {
	if amount == 0 {
		return held, kept + value
	}

	i, _ := slices.BinarySearch(held, value)
	grown := make([]T, 0, len(held)+1)
	grown = append(grown, held[:i]...)
	grown = append(grown, value)
	grown = append(grown, held[i:]...)

	if len(grown) <= amount {
		return grown, kept
	}
	if dropType == DropLow {
		return grown[:amount], kept + grown[amount]
	}
	return grown[1:], kept + grown[0]
}

// Repeat returns n copies of d, the usual input for Drop.
func Repeat[T odds.Number](d odds.Distribution[T], n int) []odds.Distribution[T] {
	dists := make([]odds.Distribution[T], max(n, 0))
	for i := range dists {
		dists[i] = d
	}
	return dists
}

// New rolls rolls dice with the given sides and drops amount of them.
func New[T constraints.Integer](sides T, rolls, amount int, dropType DropType) odds.Distribution[T] {
	return Drop(Repeat(odds.New(sides), rolls), amount, dropType)
}

// FromRange is New for dice uniform over [start, end].
func FromRange[T constraints.Integer](start, end T, rolls, amount int, dropType DropType) odds.Distribution[T] {
	return Drop(Repeat(odds.FromRange(start, end), rolls), amount, dropType)
}

// FromValues is New for dice uniform over values.
func FromValues[T odds.Number](values []T, rolls, amount int, dropType DropType) odds.Distribution[T] {
	return Drop(Repeat(odds.FromValues(values), rolls), amount, dropType)
}

// FromProbabilities is New for dice described by explicit entries.
func FromProbabilities[T odds.Number](probabilities []odds.Probability[T], rolls, amount int,
	dropType DropType) odds.Distribution[T] {
	return Drop(Repeat(odds.FromProbabilities(probabilities), rolls), amount, dropType)
}
