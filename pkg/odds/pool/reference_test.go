package pool

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/odds/pkg/odds"
)

// combinations yields every tuple of the cross product of dists, one value
// per distribution, with its joint chance. The last distribution varies
// fastest. Zero distributions yield a single empty tuple with chance 1.
func combinations[T odds.Number](dists []odds.Distribution[T]) iter.Seq2[[]T, float64] {
	return func(yield func([]T, float64) bool) {
		faces := make([][]odds.Probability[T], len(dists))
		for i, d := range dists {
			faces[i] = d.Probabilities()
		}

		cursor := make([]int, len(faces))
		for {
			values := make([]T, len(faces))
			chance := 1.0
			for i, c := range cursor {
				values[i] = faces[i][c].Value
				chance *= faces[i][c].Chance
			}
			if !yield(values, chance) {
				return
			}

			i := len(cursor) - 1
			for ; i >= 0; i-- {
				cursor[i]++
				if cursor[i] < len(faces[i]) {
					break
				}
				cursor[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// reduce applies the drop policy to one rolled tuple: sort ascending, for
// DropLow reverse, remove amount values from the end and sum the rest.
func reduce[T odds.Number](values []T, amount int, dropType DropType) T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if dropType == DropLow {
		slices.Reverse(sorted)
	}

	keep := max(len(sorted)-max(amount, 0), 0)

	var sum T
	for _, v := range sorted[:keep] {
		sum += v
	}
	return sum
}

func TestCombinations_SameDice(t *testing.T) {
	t.Parallel()

	var tuples [][]int
	var chances []float64
	for values, chance := range combinations(Repeat(odds.New(2), 3)) {
		tuples = append(tuples, values)
		chances = append(chances, chance)
	}

	assert.Equal(t, [][]int{
		{1, 1, 1}, {1, 1, 2}, {1, 2, 1}, {1, 2, 2},
		{2, 1, 1}, {2, 1, 2}, {2, 2, 1}, {2, 2, 2},
	}, tuples)
	for _, c := range chances {
		assert.Equal(t, 0.125, c)
	}
}

func TestCombinations_DifferentDice(t *testing.T) {
	t.Parallel()

	var tuples [][]int
	total := 0.0
	for values, chance := range combinations([]odds.Distribution[int]{odds.New(2), odds.New(3), odds.New(1)}) {
		tuples = append(tuples, values)
		assert.InDelta(t, 1.0/6, chance, tolerance)
		total += chance
	}

	assert.Equal(t, [][]int{
		{1, 1, 1}, {1, 2, 1}, {1, 3, 1},
		{2, 1, 1}, {2, 2, 1}, {2, 3, 1},
	}, tuples)
	assert.InDelta(t, 1.0, total, tolerance)
}

func TestCombinations_NoDistributions(t *testing.T) {
	t.Parallel()

	count := 0
	for values, chance := range combinations[int](nil) {
		count++
		assert.Empty(t, values)
		assert.Equal(t, 1.0, chance)
	}

	assert.Equal(t, 1, count)
}

func TestCombinations_StopsEarly(t *testing.T) {
	t.Parallel()

	count := 0
	for range combinations(Repeat(odds.New(6), 5)) {
		count++
		if count == 10 {
			break
		}
	}

	assert.Equal(t, 10, count)
}

func TestReduce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int
		amount   int
		dropType DropType
		want     int
	}{
		{name: "drop lowest", values: []int{3, 1, 2}, amount: 1, dropType: DropLow, want: 5},
		{name: "drop highest", values: []int{3, 1, 2}, amount: 1, dropType: DropHigh, want: 3},
		{name: "drop two lowest", values: []int{6, 1, 4, 1}, amount: 2, dropType: DropLow, want: 10},
		{name: "drop none", values: []int{6, 1, 4}, amount: 0, dropType: DropHigh, want: 11},
		{name: "negative amount", values: []int{6, 1, 4}, amount: -1, dropType: DropLow, want: 11},
		{name: "drop all", values: []int{6, 1, 4}, amount: 3, dropType: DropLow, want: 0},
		{name: "drop more than rolled", values: []int{6, 1}, amount: 4, dropType: DropHigh, want: 0},
		{name: "empty", values: nil, amount: 1, dropType: DropHigh, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reduce(tt.values, tt.amount, tt.dropType))
		})
	}
}

func TestReduce_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	values := []int{5, 2, 9}
	_ = reduce(values, 1, DropLow)

	assert.Equal(t, []int{5, 2, 9}, values)
}

