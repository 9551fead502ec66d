package odds

import "golang.org/x/exp/constraints"

// Number is what an outcome value must support: total ordering, addition
// and conversion to float64 for the statistics.
type Number interface {
	constraints.Integer | constraints.Float
}
