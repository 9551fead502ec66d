package explode

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/odds/pkg/odds"
)

// Condition compares a rolled value against the threshold.
type Condition int

const (
	// Lower explodes rolls below the threshold.
	Lower Condition = iota
	// LowerOrEqual explodes rolls at or below the threshold.
	LowerOrEqual
	// Equal explodes rolls equal to the threshold.
	Equal
	// GreaterOrEqual explodes rolls at or above the threshold.
	GreaterOrEqual
	// Greater explodes rolls above the threshold.
	Greater
)

// ErrUnknownCondition is returned by ParseCondition for an unknown symbol.
var ErrUnknownCondition = errors.New("unknown explode condition")

var symbols = map[Condition]string{
	Lower:          "<",
	LowerOrEqual:   "<=",
	Equal:          "=",
	GreaterOrEqual: ">=",
	Greater:        ">",
}

func (c Condition) String() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

// ParseCondition accepts the symbols printed by String, plus "==".
func ParseCondition(s string) (Condition, error) {
	if s == "==" {
		return Equal, nil
	}
	for c, symbol := range symbols {
		if symbol == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCondition, s)
}

// Holds reports whether value satisfies c against threshold. Unknown
// conditions never hold.
func Holds[T odds.Number](c Condition, value, threshold T) bool {
	switch c {
	case Lower:
		return value < threshold
	case LowerOrEqual:
		return value <= threshold
	case Equal:
		return value == threshold
	case GreaterOrEqual:
		return value >= threshold
	case Greater:
		return value > threshold
	default:
		return false
	}
}

// FollowUp returns the callback for odds.Distribution.AddDependent: the
// explosion distribution when the condition holds, the neutral
// distribution otherwise.
func FollowUp[T odds.Number](threshold T, c Condition, explosion odds.Distribution[T]) odds.FollowUp[T] {
	return func(value T) odds.Distribution[T] {
		if Holds(c, value, threshold) {
			return explosion
		}
		return odds.Empty[T]()
	}
}

// Apply explodes base once.
func Apply[T odds.Number](base odds.Distribution[T], threshold T, c Condition,
	explosion odds.Distribution[T]) odds.Distribution[T] {
	return base.AddDependent(FollowUp(threshold, c, explosion))
}

// New explodes a die with the given number of sides.
func New[T constraints.Integer](sides, threshold T, c Condition, explosion odds.Distribution[T]) odds.Distribution[T] {
	return Apply(odds.New(sides), threshold, c, explosion)
}

// FromRange explodes a die uniform over [start, end].
func FromRange[T constraints.Integer](start, end, threshold T, c Condition,
	explosion odds.Distribution[T]) odds.Distribution[T] {
	return Apply(odds.FromRange(start, end), threshold, c, explosion)
}

// FromValues explodes a die uniform over values.
func FromValues[T odds.Number](values []T, threshold T, c Condition,
	explosion odds.Distribution[T]) odds.Distribution[T] {
	return Apply(odds.FromValues(values), threshold, c, explosion)
}

// FromProbabilities explodes a die described by explicit entries.
func FromProbabilities[T odds.Number](probabilities []odds.Probability[T], threshold T, c Condition,
	explosion odds.Distribution[T]) odds.Distribution[T] {
	return Apply(odds.FromProbabilities(probabilities), threshold, c, explosion)
}
