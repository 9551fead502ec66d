package odds

import "math"

// Min is the smallest possible value.
func (d Distribution[T]) Min() T {
	return d.entries()[0].Value
}

// Max is the largest possible value.
func (d Distribution[T]) Max() T {
	entries := d.entries()
	return entries[len(entries)-1].Value
}

// Mean is the expected value.
func (d Distribution[T]) Mean() float64 {
	mean := 0.0
	for _, p := range d.entries() {
		mean += p.Chance * float64(p.Value)
	}
	return mean
}

// Variance is the population variance, E[X²] - E[X]².
//
// The one-pass formula loses precision for values of large magnitude; it is
// exact enough at dice scale. Rounding residue below zero is clamped.
func (d Distribution[T]) Variance() float64 {
	moment := 0.0
	for _, p := range d.entries() {
		v := float64(p.Value)
		moment += p.Chance * v * v
	}
	mean := d.Mean()
	return max(moment-mean*mean, 0)
}

// StandardDeviation is the square root of Variance.
func (d Distribution[T]) StandardDeviation() float64 {
	return math.Sqrt(d.Variance())
}
