package cli

import (
	"github.com/spf13/cobra"

	"github.com/ib-77/odds/pkg/odds/batch"
	"github.com/ib-77/odds/pkg/odds/core"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <expression>...",
		Short: "Print the distribution of dice expressions",
		Long: `Print the exact distribution of each expression: one histogram line
per outcome followed by min, max, mean, variance and standard deviation.`,
		Example:       `  odds show 2d6 "4d6 dl1" d20+5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, expressions []string, cmd *cobra.Command) error {
	rolls := make([]Roll, len(expressions))
	for i, e := range expressions {
		rolls[i] = Roll{Expression: e}
	}
	return evaluateRolls(opts, "", rolls, cmd)
}

func evaluateRolls(opts *RootOptions, scenario string, rolls []Roll, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		BarLength: opts.BarLength,
	}

	expressions := make([]string, len(rolls))
	for i, r := range rolls {
		expressions[i] = r.Expression
	}

	ctx := core.WithWorkers(cmd.Context(), opts.Workers)
	results := batch.Evaluate(ctx, expressions)

	if err := formatter.Write(scenario, rolls, results); err != nil {
		return WrapExitError(ExitFailure, "write output", err)
	}
	return resultError(results)
}
