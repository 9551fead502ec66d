package batch

import (
	"github.com/ib-77/odds/pkg/odds"
	"github.com/ib-77/odds/pkg/odds/notation"
)

// Report is an evaluated expression with its summary statistics.
type Report struct {
	Expression        string
	Canonical         string
	Distribution      odds.Distribution[int]
	Min               int
	Max               int
	Mean              float64
	Variance          float64
	StandardDeviation float64
}

func NewReport(e notation.Expression, d odds.Distribution[int]) Report {
	return Report{
		Expression:        e.Raw,
		Canonical:         e.String(),
		Distribution:      d,
		Min:               d.Min(),
		Max:               d.Max(),
		Mean:              d.Mean(),
		Variance:          d.Variance(),
		StandardDeviation: d.StandardDeviation(),
	}
}
