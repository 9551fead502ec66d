package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/odds/pkg/odds/batch"
	"github.com/ib-77/odds/pkg/odds/render"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // An expression failed or was cancelled
	ExitCommandError = 2 // Bad arguments, flags, environment or scenario file
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error // optional
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not an
// ExitError come from cobra's own argument and flag checks, so they map to
// ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Roll is one expression to evaluate, optionally named.
type Roll struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// Response is the JSON document written for --format json.
type Response struct {
	Status   string    `json:"status"` // "ok" or "error"
	Scenario string    `json:"scenario,omitempty"`
	Rolls    []RollOut `json:"rolls"`
}

type RollOut struct {
	Name              string        `json:"name,omitempty"`
	Expression        string        `json:"expression"`
	Canonical         string        `json:"canonical,omitempty"`
	Min               *int          `json:"min,omitempty"`
	Max               *int          `json:"max,omitempty"`
	Mean              *float64      `json:"mean,omitempty"`
	Variance          *float64      `json:"variance,omitempty"`
	StandardDeviation *float64      `json:"standard_deviation,omitempty"`
	Probabilities     []Probability `json:"probabilities,omitempty"`
	Error             string        `json:"error,omitempty"`
	Cancelled         bool          `json:"cancelled,omitempty"`
}

type Probability struct {
	Value  int     `json:"value"`
	Chance float64 `json:"chance"`
}

// OutputFormatter writes evaluated rolls as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	BarLength int
}

// Write prints one block per roll. rolls[i] belongs to results[i].
func (f *OutputFormatter) Write(scenario string, rolls []Roll, results []batch.Result[batch.Report]) error {
	if f.Format == "json" {
		return f.writeJSON(scenario, rolls, results)
	}
	return f.writeText(scenario, rolls, results)
}

func (f *OutputFormatter) writeText(scenario string, rolls []Roll, results []batch.Result[batch.Report]) error {
	if scenario != "" {
		if _, err := fmt.Fprintf(f.Writer, "# %s\n\n", scenario); err != nil {
			return err
		}
	}

	for i, r := range results {
		title := title(rolls[i])

		switch {
		case r.IsCancel():
			fmt.Fprintf(f.ErrWriter, "%s: cancelled: %v\n", title, r.Err())
			continue
		case !r.IsSuccess():
			fmt.Fprintf(f.ErrWriter, "%s: %v\n", title, r.Err())
			continue
		}

		report := r.Result()
		_, err := fmt.Fprintf(f.Writer, "== %s (%s) ==\n%s%s\n\n",
			title, report.Canonical,
			render.Histogram(report.Distribution, render.WithBarLength(f.BarLength)),
			render.Details(report.Distribution))
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) writeJSON(scenario string, rolls []Roll, results []batch.Result[batch.Report]) error {
	resp := Response{Status: "ok", Scenario: scenario, Rolls: make([]RollOut, len(results))}

	for i, r := range results {
		out := RollOut{Name: rolls[i].Name, Expression: rolls[i].Expression}

		switch {
		case r.IsCancel():
			resp.Status = "error"
			out.Cancelled = true
			out.Error = r.Err().Error()
		case !r.IsSuccess():
			resp.Status = "error"
			out.Error = r.Err().Error()
		default:
			report := r.Result()
			out.Canonical = report.Canonical
			out.Min = &report.Min
			out.Max = &report.Max
			out.Mean = &report.Mean
			out.Variance = &report.Variance
			out.StandardDeviation = &report.StandardDeviation
			for p := range report.Distribution.All() {
				out.Probabilities = append(out.Probabilities, Probability{Value: p.Value, Chance: p.Chance})
			}
		}
		resp.Rolls[i] = out
	}

	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func title(r Roll) string {
	if r.Name != "" {
		return r.Name
	}
	return r.Expression
}

// resultError turns failed or cancelled results into an ExitFailure.
func resultError(results []batch.Result[batch.Report]) error {
	if err := batch.Errors(results); err != nil {
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}
	for _, r := range results {
		if r.IsCancel() {
			return WrapExitError(ExitFailure, "evaluation cancelled", r.Err())
		}
	}
	return nil
}
