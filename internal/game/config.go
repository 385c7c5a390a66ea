package game

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// StepMS is how often, in milliseconds, the player advances in its facing direction.
	StepMS int `env:"MEALRUN_STEP_MS" envDefault:"800"`
	// RedrawMS is how often, in milliseconds, the screen is redrawn while running.
	RedrawMS int `env:"MEALRUN_REDRAW_MS" envDefault:"400"`
	// Level is chosen when the game is started with no map selected.
	Level string `env:"MEALRUN_LEVEL" envDefault:"1"`
	// LevelsFile replaces the embedded levels when set.
	LevelsFile string `env:"MEALRUN_LEVELS_FILE"`
}

// DefaultConfig returns the built-in timings and the first level.
func DefaultConfig() Config {
	return Config{
		StepMS:   800,
		RedrawMS: 400,
		Level:    "1",
	}
}

// ConfigFromEnv reads the configuration from MEALRUN_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that both periods are positive.
func (c Config) Validate() error {
	if c.StepMS <= 0 {
		return fmt.Errorf("MEALRUN_STEP_MS: period must be positive, got %d", c.StepMS)
	}
	if c.RedrawMS <= 0 {
		return fmt.Errorf("MEALRUN_REDRAW_MS: period must be positive, got %d", c.RedrawMS)
	}
	return nil
}

// StepPeriod returns the auto-step period.
func (c Config) StepPeriod() time.Duration {
	return time.Duration(c.StepMS) * time.Millisecond
}

// RedrawPeriod returns the redraw period.
func (c Config) RedrawPeriod() time.Duration {
	return time.Duration(c.RedrawMS) * time.Millisecond
}
