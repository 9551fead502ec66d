package odds

// FollowUp returns the distribution rolled after value was observed.
// It must be pure: the algebra may call it any number of times per value.
type FollowUp[T Number] func(value T) Distribution[T]

// AddIndependent is the convolution of d and other: every pair of outcomes
// is summed with the product of their chances.
func (d Distribution[T]) AddIndependent(other Distribution[T]) Distribution[T] {
	left, right := d.entries(), other.entries()

	out := make([]Probability[T], 0, len(left)*len(right))
	for _, outer := range right {
		for _, inner := range left {
			out = append(out, outer.Combine(inner))
		}
	}
	return FromProbabilities(out)
}

// AddDependent rolls next(value) for every outcome of d and adds the result
// to that outcome. A nil next behaves as the neutral follow-up.
func (d Distribution[T]) AddDependent(next FollowUp[T]) Distribution[T] {
	if next == nil {
		return d
	}

	var out []Probability[T]
	for _, outer := range d.entries() {
		for _, inner := range next(outer.Value).entries() {
			out = append(out, outer.Combine(inner))
		}
	}
	return FromProbabilities(out)
}

// ConditionalChain weights next(value) by the chance of value and keeps the
// follow-up values as they are. A nil next gives the neutral distribution.
func (d Distribution[T]) ConditionalChain(next FollowUp[T]) Distribution[T] {
	if next == nil {
		return Empty[T]()
	}

	var out []Probability[T]
	for _, outer := range d.entries() {
		for _, inner := range next(outer.Value).entries() {
			out = append(out, inner.Scale(outer.Chance))
		}
	}
	return FromProbabilities(out)
}

// AddFlat shifts every value by k. Chances are unchanged.
func (d Distribution[T]) AddFlat(k T) Distribution[T] {
	entries := d.entries()

	out := make([]Probability[T], len(entries))
	for i, p := range entries {
		out[i] = Probability[T]{Value: p.Value + k, Chance: p.Chance}
	}
	return Distribution[T]{probabilities: out}
}

// Operand is something Plus can add onto a distribution: another
// Distribution, a Flat constant or a FollowUp.
type Operand[T Number] interface {
	addTo(base Distribution[T]) Distribution[T]
}

// Flat is a constant operand for Plus.
type Flat[T Number] struct {
	Value T
}

// Const wraps k as a Plus operand.
func Const[T Number](k T) Flat[T] {
	return Flat[T]{Value: k}
}

func (f Flat[T]) addTo(base Distribution[T]) Distribution[T] {
	return base.AddFlat(f.Value)
}

func (next FollowUp[T]) addTo(base Distribution[T]) Distribution[T] {
	return base.AddDependent(next)
}

func (d Distribution[T]) addTo(base Distribution[T]) Distribution[T] {
	return base.AddIndependent(d)
}

// Plus adds every operand in order, left to right.
//
//	d6 := odds.New(6)
//	attack := d6.Plus(d6, odds.Const(2))
func (d Distribution[T]) Plus(operands ...Operand[T]) Distribution[T] {
	out := d
	for _, o := range operands {
		if o == nil {
			continue
		}
		out = o.addTo(out)
	}
	return out
}
