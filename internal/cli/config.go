package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults for the global flags. Flags given
// on the command line win.
type Config struct {
	Format    string `env:"ODDS_FORMAT"     envDefault:"text"`
	Workers   int    `env:"ODDS_WORKERS"    envDefault:"0"`
	BarLength int    `env:"ODDS_BAR_LENGTH" envDefault:"50"`
	Verbose   bool   `env:"ODDS_VERBOSE"    envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
