package odds

import "slices"

// Compress merges entries sharing a value by summing their chances and
// returns one entry per value, ascending. The input is not modified.
//
// Chances of a value are summed in input order, so the result is
// deterministic for a given input. Compressing compressed input is a no-op.
func Compress[T Number](probabilities []Probability[T]) []Probability[T] {
	index := make(map[T]int, len(probabilities))
	out := make([]Probability[T], 0, len(probabilities))

	for _, p := range probabilities {
		if i, ok := index[p.Value]; ok {
			out[i].Chance += p.Chance
			continue
		}
		index[p.Value] = len(out)
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b Probability[T]) int {
		return a.Compare(b)
	})
	return out
}
