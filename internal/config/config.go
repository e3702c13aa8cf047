// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured
// Go types, and validates that required values are present so they can
// be reused across the application runtime.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the
	// process environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix scopes which environment variables belong to this app.
// Keys are nested with "." after the prefix is stripped, e.g.
// TUTORIAL_SERVER.PORT -> server.port -> Config.Server.Port.
const envPrefix = "TUTORIAL_"

// serviceName tags logs for this service. Hardcoded on purpose so it
// cannot be configured into inconsistency.
const serviceName = "echo-tutorial"

// Config is the root configuration object for the application.
//
// Logging is a pointer because it is optional; defaults are injected
// at load time when the block is absent.
type Config struct {
	Primary Primary        `koanf:"primary" validate:"required"`
	Server  ServerConfig   `koanf:"server" validate:"required"`
	Logging *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the log encoding: "console" for human-friendly
	// output during development, "json" for machine-readable logs.
	Format string `koanf:"format" validate:"required,oneof=console json"`

	// Service identifies this service in log fields.
	Service string `koanf:"-"`
}

// DefaultLoggingConfig returns the logging settings used when the
// config omits the logging block entirely.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "info",
		Format: "console",
	}
}

// Load reads configuration from environment variables, unmarshals it
// into Config, validates it, and applies defaults.
//
// Missing or invalid required values abort the process: a service with
// broken config should fail fast, not limp along.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Logging == nil {
		mainConfig.Logging = DefaultLoggingConfig()
	}

	// Service name is forced regardless of what the environment says.
	mainConfig.Logging.Service = serviceName

	if err := validate.Struct(mainConfig.Logging); err != nil {
		logger.Fatal().Err(err).Msg("Invalid logging config.")
	}

	return mainConfig, nil
}
