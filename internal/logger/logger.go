// Package logger configures the application's logging.
//
// It uses zerolog for structured logging. The logger is built once at
// startup from config and shared through the server container; request
// handling attaches per-request fields via middleware.
package logger

import (
	"os"
	"strings"

	"github.com/Minwook11/echo-tutorial/internal/config"
	"github.com/rs/zerolog"
)

// New constructs the application logger from the logging config.
//
// Format "console" writes human-friendly output to stderr; "json"
// writes raw zerolog JSON. Unknown levels fall back to info rather
// than failing: a bad log level should never take the service down.
func New(cfg *config.LoggingConfig) *zerolog.Logger {
	level := parseLevel(cfg.Level)

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()

	return &logger
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
