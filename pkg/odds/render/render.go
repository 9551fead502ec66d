// Package render prints distributions as fixed-width text: one histogram
// line per outcome and a block of summary statistics.
//
// It only reads the public surface of odds.Distribution.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/ib-77/odds/pkg/odds"
)

const (
	NameWidth   = 20
	NumberWidth = 10
	Decimals    = 3
	BarLength   = 50
)

type config struct {
	barLength int
}

// Option customizes Histogram and Line.
type Option func(*config)

// WithBarLength sets the full-scale bar width. Non-positive values keep the
// default.
func WithBarLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.barLength = n
		}
	}
}

func newConfig(opts []Option) config {
	c := config{barLength: BarLength}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Line formats one entry as "value : percentage : bar". The bar has
// floor(chance * bar length) '#' characters, padded with '-'.
func Line[T odds.Number](p odds.Probability[T], opts ...Option) string {
	c := newConfig(opts)

	filled := int(math.Floor(p.Chance * float64(c.barLength)))
	filled = min(max(filled, 0), c.barLength)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", c.barLength-filled)

	return fmt.Sprintf("%*s : %*.*f : %s",
		NumberWidth, formatValue(p.Value),
		NumberWidth, Decimals, p.Chance*100,
		bar)
}

// Histogram returns one Line per entry, ascending, each ending in a newline.
func Histogram[T odds.Number](d odds.Distribution[T], opts ...Option) string {
	var b strings.Builder
	for p := range d.All() {
		b.WriteString(Line(p, opts...))
		b.WriteByte('\n')
	}
	return b.String()
}

// Details returns min, max, mean, variance and standard deviation, one per
// line, without a trailing newline.
func Details[T odds.Number](d odds.Distribution[T]) string {
	rows := []struct {
		name  string
		value string
	}{
		{name: "Min", value: formatValue(d.Min())},
		{name: "Max", value: formatValue(d.Max())},
		{name: "Mean", value: formatFloat(d.Mean())},
		{name: "Variance", value: formatFloat(d.Variance())},
		{name: "Standard Deviation", value: formatFloat(d.StandardDeviation())},
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%-*s%*s", NameWidth, r.name, NumberWidth, r.value)
	}
	return strings.Join(lines, "\n")
}

func formatValue[T odds.Number](v T) string {
	switch x := any(v).(type) {
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.*f", Decimals, f)
}
