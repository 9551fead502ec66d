package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const coinScenario = `name: coin toss
description: a flip and a constant
rolls:
  - name: flip
    expression: d2
  - expression: "3"
`

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, coinScenario))

	require.NoError(t, err)
	assert.Equal(t, "coin toss", s.Name)
	assert.Equal(t, "a flip and a constant", s.Description)
	assert.Equal(t, []Roll{{Name: "flip", Expression: "d2"}, {Expression: "3"}}, s.Rolls)
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown field", content: "name: x\nroll:\n  - expression: d6\n", want: "failed to parse YAML"},
		{name: "missing name", content: "rolls:\n  - expression: d6\n", want: "name is required"},
		{name: "no rolls", content: "name: x\n", want: "rolls list is required"},
		{name: "empty expression", content: "name: x\nrolls:\n  - name: y\n", want: "roll 1: expression is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScenario_Text(t *testing.T) {
	stdout, stderr, err := execute(t, "--bar-length", "10", "scenario", writeScenario(t, coinScenario))

	require.NoError(t, err)
	assert.Empty(t, stderr)
	newGoldie(t).Assert(t, "scenario_text", []byte(stdout))
}

func TestScenario_JSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "scenario", writeScenario(t, coinScenario))

	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "coin toss", resp.Scenario)
	require.Len(t, resp.Rolls, 2)
	assert.Equal(t, "flip", resp.Rolls[0].Name)
	assert.Equal(t, "1d2", resp.Rolls[0].Canonical)
	assert.Equal(t, 3, *resp.Rolls[1].Min)
}

func TestScenario_BadFileIsCommandError(t *testing.T) {
	_, _, err := execute(t, "scenario", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScenario_FailingRoll(t *testing.T) {
	path := writeScenario(t, "name: broken\nrolls:\n  - name: oops\n    expression: 1d\n")

	_, stderr, err := execute(t, "scenario", path)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stderr, "oops: invalid dice expression")
}
