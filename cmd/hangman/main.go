// Package main is the entry point for Hangman.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/telemetry"
)

func main() {
	// Startup messages go to stderr; once the screen is up only the log file is written.
	startup := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		startup.Warn().Err(err).Msg(".env file not loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		startup.Fatal().Err(err).Msg("invalid configuration")
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		startup.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			startup.Warn().Err(err).Msg("telemetry setup failed, continuing without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("shutting down telemetry")
				}
			}()
		}
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		startup.Fatal().Err(err).Msg("failed to initialize game")
	}

	err = g.Run(ctx)
	g.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to cfg.LogFile, or nowhere when it is unset.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		out = f
		closeFn = func() { f.Close() }
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeFn, nil
}
