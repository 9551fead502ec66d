package odds

import (
	"cmp"
	"fmt"
)

// Probability is a single outcome of a distribution.
// Identity and ordering use Value only, so entries can be merged by value.
type Probability[T Number] struct {
	Value  T
	Chance float64
}

// Combine joins two independent outcomes: values add, chances multiply.
func (p Probability[T]) Combine(other Probability[T]) Probability[T] {
	return Probability[T]{
		Value:  p.Value + other.Value,
		Chance: p.Chance * other.Chance,
	}
}

// Scale keeps the value and multiplies the chance by factor.
func (p Probability[T]) Scale(factor float64) Probability[T] {
	return Probability[T]{
		Value:  p.Value,
		Chance: p.Chance * factor,
	}
}

// Equal reports whether both entries describe the same outcome value.
func (p Probability[T]) Equal(other Probability[T]) bool {
	return p.Value == other.Value
}

// Compare orders entries by value.
func (p Probability[T]) Compare(other Probability[T]) int {
	return cmp.Compare(p.Value, other.Value)
}

func (p Probability[T]) String() string {
	return fmt.Sprintf("%v@%g", p.Value, p.Chance)
}
