package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/wricardo/perfect-guess/game/scores"
)

// Settings holds environment configuration for the command-line tools.
// Command-line flags take precedence over these values.
type Settings struct {
	ScoreFile string `env:"GUESS_SCORE_FILE"`
	ConfigDir string `env:"GUESS_CONFIG_DIR" envDefault:"configs"`
	LogLevel  string `env:"GUESS_LOG_LEVEL" envDefault:"warn"`
	Seed      *int64 `env:"GUESS_SEED"`

	// DefaultDifficulty names the preset used when none is chosen
	DefaultDifficulty string `env:"GUESS_DEFAULT_DIFFICULTY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings parses Settings from the environment and fills the default
// score file path
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := ParseEnv(&settings); err != nil {
		return Settings{}, err
	}
	if settings.ScoreFile == "" {
		settings.ScoreFile = scores.DefaultPath()
	}
	return settings, nil
}
