package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Workers   int    // 0 means GOMAXPROCS
	BarLength int
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the odds CLI. Flag defaults
// come from the environment, see Config.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cfg, cfgErr := LoadConfig()

	cmd := &cobra.Command{
		Use:   "odds",
		Short: "odds - exact dice probabilities",
		Long: `Compute exact probability distributions for dice expressions.

Expressions use dice notation: "2d6+3", "4d6dl1", "2d20kh1", "d6!", "d10!>=9-d4".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return WrapExitError(ExitCommandError, "invalid environment", cfgErr)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Workers < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid workers %d: must not be negative", opts.Workers))
			}
			if opts.BarLength <= 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid bar length %d: must be positive", opts.BarLength))
			}

			setupLogging(cmd, opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().IntVarP(&opts.Workers, "workers", "w", cfg.Workers, "worker lines, 0 for one per CPU")
	cmd.PersistentFlags().IntVar(&opts.BarLength, "bar-length", cfg.BarLength, "histogram bar width")

	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewScenarioCommand(opts))

	return cmd
}

// setupLogging sends logs to stderr so JSON output stays clean.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
