// Package config loads game settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Home is the base directory for saves. Empty means the user's home directory.
	Home string `env:"HANGMAN_HOME"`
	// SaveRoot is the app-wide saves directory under Home.
	SaveRoot string `env:"HANGMAN_SAVE_ROOT" envDefault:"onagova_saves"`
	// Namespace separates this game's saves from other games under SaveRoot.
	Namespace string `env:"HANGMAN_NAMESPACE" envDefault:"hangman"`

	// WordsFile replaces the embedded word list when set.
	WordsFile     string `env:"HANGMAN_WORDS_FILE"`
	MinWordLength int    `env:"HANGMAN_MIN_WORD_LENGTH" envDefault:"5"`
	MaxWordLength int    `env:"HANGMAN_MAX_WORD_LENGTH" envDefault:"12"`

	// Seed for random word selection. A seed of 0 means a time-based seed.
	Seed int64 `env:"HANGMAN_SEED"`

	LogFile  string `env:"HANGMAN_LOG_FILE"`
	LogLevel string `env:"HANGMAN_LOG_LEVEL" envDefault:"info"`

	Telemetry bool `env:"HANGMAN_TELEMETRY"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.Home = home
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot produce a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.SaveRoot == "" {
		errs = append(errs, errors.New("save root must not be empty"))
	}
	if c.Namespace == "" {
		errs = append(errs, errors.New("namespace must not be empty"))
	}
	if c.MinWordLength < 1 {
		errs = append(errs, fmt.Errorf("min word length %d must be at least 1", c.MinWordLength))
	}
	if c.MaxWordLength < c.MinWordLength {
		errs = append(errs, fmt.Errorf("max word length %d is below min word length %d",
			c.MaxWordLength, c.MinWordLength))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
