package odds

import (
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Distribution is a compressed table of outcome values and their chances.
// The zero value is the neutral distribution.
type Distribution[T Number] struct {
	probabilities []Probability[T]
}

// FromProbabilities is the canonical constructor. Empty input gives the
// neutral distribution, anything else is compressed. Chances are taken as
// given and are not renormalized.
func FromProbabilities[T Number](probabilities []Probability[T]) Distribution[T] {
	if len(probabilities) == 0 {
		return Empty[T]()
	}
	return Distribution[T]{probabilities: Compress(probabilities)}
}

// Empty returns the neutral distribution: value zero with certainty.
func Empty[T Number]() Distribution[T] {
	return Distribution[T]{probabilities: neutral[T]()}
}

// FromValues gives every listed value the same chance. Repeated values
// accumulate their share.
func FromValues[T Number](values []T) Distribution[T] {
	if len(values) == 0 {
		return Empty[T]()
	}

	chance := 1.0 / float64(len(values))
	probabilities := make([]Probability[T], len(values))
	for i, v := range values {
		probabilities[i] = Probability[T]{Value: v, Chance: chance}
	}
	return FromProbabilities(probabilities)
}

// FromRange is uniform over [start, end]. Reversed bounds are swapped.
func FromRange[T constraints.Integer](start, end T) Distribution[T] {
	if end < start {
		start, end = end, start
	}

	var values []T
	for v := start; ; v++ {
		values = append(values, v)
		if v == end {
			break
		}
	}
	return FromValues(values)
}

// New returns a die with the given number of sides: [1, sides] for positive
// sizes, [sides, -1] for negative ones and the neutral distribution for zero.
func New[T constraints.Integer](sides T) Distribution[T] {
	var zero T
	switch {
	case sides < zero:
		return FromRange(sides, zero-1)
	case sides == zero:
		return Empty[T]()
	default:
		return FromRange(zero+1, sides)
	}
}

// Probabilities returns a copy of the entries, ascending by value.
func (d Distribution[T]) Probabilities() []Probability[T] {
	return slices.Clone(d.entries())
}

// All iterates the entries in ascending value order.
func (d Distribution[T]) All() iter.Seq[Probability[T]] {
	return func(yield func(Probability[T]) bool) {
		for _, p := range d.entries() {
			if !yield(p) {
				return
			}
		}
	}
}

// Len is the number of distinct outcome values.
func (d Distribution[T]) Len() int {
	return len(d.entries())
}

// Chance returns the chance of value, zero when it cannot occur.
func (d Distribution[T]) Chance(value T) float64 {
	entries := d.entries()
	i, found := slices.BinarySearchFunc(entries, value, func(p Probability[T], v T) int {
		return p.Compare(Probability[T]{Value: v})
	})
	if !found {
		return 0
	}
	return entries[i].Chance
}

// TotalChance sums all chances. It is 1 for well formed input.
func (d Distribution[T]) TotalChance() float64 {
	total := 0.0
	for _, p := range d.entries() {
		total += p.Chance
	}
	return total
}

// Equal reports whether both distributions hold the same values with
// exactly the same chances.
func (d Distribution[T]) Equal(other Distribution[T]) bool {
	return d.EqualWithin(other, 0)
}

// EqualWithin is Equal with chances allowed to differ by tolerance.
func (d Distribution[T]) EqualWithin(other Distribution[T], tolerance float64) bool {
	return slices.EqualFunc(d.entries(), other.entries(), func(a, b Probability[T]) bool {
		return a.Value == b.Value && math.Abs(a.Chance-b.Chance) <= tolerance
	})
}

func (d Distribution[T]) entries() []Probability[T] {
	if len(d.probabilities) == 0 {
		return neutral[T]()
	}
	return d.probabilities
}

func neutral[T Number]() []Probability[T] {
	return []Probability[T]{{Value: 0, Chance: 1}}
}
