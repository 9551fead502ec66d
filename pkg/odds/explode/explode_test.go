package explode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/odds/pkg/odds"
)

func TestFollowUp_Conditions(t *testing.T) {
	t.Parallel()

	explosion := odds.New(3)

	tests := []struct {
		condition Condition
		explodes  map[int]bool
	}{
		{condition: Lower, explodes: map[int]bool{-1: true, 0: false, 1: false}},
		{condition: LowerOrEqual, explodes: map[int]bool{-1: true, 0: true, 1: false}},
		{condition: Equal, explodes: map[int]bool{-1: false, 0: true, 1: false}},
		{condition: GreaterOrEqual, explodes: map[int]bool{-1: false, 0: true, 1: true}},
		{condition: Greater, explodes: map[int]bool{-1: false, 0: false, 1: true}},
	}

	for _, tt := range tests {
		t.Run(tt.condition.String(), func(t *testing.T) {
			next := FollowUp(0, tt.condition, explosion)
			for value, explodes := range tt.explodes {
				got := next(value)
				if explodes {
					assert.True(t, explosion.Equal(got), "value %d should explode", value)
				} else {
					assert.True(t, odds.Empty[int]().Equal(got), "value %d should not explode", value)
				}
			}
		})
	}
}

func TestFollowUp_UnknownConditionNeverExplodes(t *testing.T) {
	t.Parallel()

	next := FollowUp(0, Condition(42), odds.New(6))

	assert.True(t, odds.Empty[int]().Equal(next(0)))
}

func TestInitializers(t *testing.T) {
	t.Parallel()

	want := odds.FromProbabilities([]odds.Probability[int]{
		{Value: 2, Chance: 0.75},
		{Value: 3, Chance: 0.25},
	})
	coin := odds.New(2)

	tests := []struct {
		name string
		got  odds.Distribution[int]
	}{
		{name: "new", got: New(2, 1, LowerOrEqual, coin)},
		{name: "values", got: FromValues([]int{1, 2}, 1, LowerOrEqual, coin)},
		{name: "range", got: FromRange(1, 2, 1, LowerOrEqual, coin)},
		{name: "probabilities", got: FromProbabilities([]odds.Probability[int]{
			{Value: 1, Chance: 0.5},
			{Value: 2, Chance: 0.5},
		}, 1, LowerOrEqual, coin)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, want.Equal(tt.got), "got %v", tt.got.Probabilities())
		})
	}
}

func TestApply_ExplodingD6OnSix(t *testing.T) {
	t.Parallel()

	d6 := odds.New(6)
	got := Apply(d6, 6, Equal, d6)

	assert.Equal(t, 1, got.Min())
	assert.Equal(t, 12, got.Max())
	assert.Equal(t, 0.0, got.Chance(6))
	assert.InDelta(t, 1.0/6, got.Chance(5), 1e-12)
	assert.InDelta(t, 1.0/36, got.Chance(7), 1e-12)
	assert.InDelta(t, 3.5+3.5/6, got.Mean(), 1e-12)
}

func TestApply_SingleLevelOnly(t *testing.T) {
	t.Parallel()

	coin := odds.New(2)
	once := Apply(coin, 2, Equal, coin)

	// A second 2 does not explode again without nesting.
	assert.Equal(t, 4, once.Max())

	twice := Apply(coin, 2, Equal, once)
	assert.Equal(t, 6, twice.Max())
	assert.InDelta(t, 0.125, twice.Chance(6), 1e-12)
}

func TestParseCondition(t *testing.T) {
	t.Parallel()

	for _, c := range []Condition{Lower, LowerOrEqual, Equal, GreaterOrEqual, Greater} {
		got, err := ParseCondition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCondition("==")
	require.NoError(t, err)
	assert.Equal(t, Equal, got)

	_, err = ParseCondition("=>")
	assert.ErrorIs(t, err, ErrUnknownCondition)
}

func TestCondition_StringUnknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Condition(9)", Condition(9).String())
}

func TestCondition_SymbolsAndBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c                  Condition
		symbol             string
		below, at, greater bool
	}{
		{c: Lower, symbol: "<", below: true},
		{c: LowerOrEqual, symbol: "<=", below: true, at: true},
		{c: Equal, symbol: "=", at: true},
		{c: GreaterOrEqual, symbol: ">=", at: true, greater: true},
		{c: Greater, symbol: ">", greater: true},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.c.String())
			assert.Equal(t, tt.below, Holds(tt.c, 2, 3))
			assert.Equal(t, tt.at, Holds(tt.c, 3, 3))
			assert.Equal(t, tt.greater, Holds(tt.c, 4, 3))
		})
	}
}
