// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the GUI and the console.
type Config struct {
	// DataDir overrides the platform data directory. Empty means the default.
	DataDir string `env:"CHESSMATE_DATA_DIR"`

	// NoStorage runs without opening the database.
	NoStorage bool `env:"CHESSMATE_NO_STORAGE"`

	// Verbose logs every move as it is played.
	Verbose bool `env:"CHESSMATE_VERBOSE"`

	FlipBoard bool `env:"CHESSMATE_FLIP_BOARD"`
	Sound     bool `env:"CHESSMATE_SOUND" envDefault:"true"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
