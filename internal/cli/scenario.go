package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Scenario is a named list of rolls read from YAML:
//
//	name: fireball vs goblins
//	rolls:
//	  - name: damage
//	    expression: 8d6
//	  - expression: d20+5
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Rolls       []Roll `yaml:"rolls"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Rolls) == 0 {
		return errors.New("rolls list is required and must be non-empty")
	}
	for i, r := range s.Rolls {
		if r.Expression == "" {
			return fmt.Errorf("roll %d: expression is required", i+1)
		}
	}
	return nil
}

// NewScenarioCommand creates the scenario command.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario <file.yaml>",
		Short: "Evaluate every roll of a scenario file",
		Long: `Evaluate the rolls listed in a YAML scenario file.

The file has a name, an optional description and a non-empty list of
rolls, each with an expression and an optional name.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	scenario, err := LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load scenario", err)
	}
	return evaluateRolls(opts, scenario.Name, scenario.Rolls, cmd)
}
