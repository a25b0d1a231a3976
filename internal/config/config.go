// Package config reads process settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/island-randomizer/internal/errors"
)

// Config holds the settings shared by every command
type Config struct {
	// RedisAddr enables the Redis profile store; empty keeps profiles in memory
	RedisAddr string `env:"RANDOMIZER_REDIS_ADDR"`
	// CatalogPath replaces the embedded catalog with a YAML file
	CatalogPath string `env:"RANDOMIZER_CATALOG"`
	// Seed makes randomization reproducible; nil rolls real dice
	Seed     *uint64 `env:"RANDOMIZER_SEED"`
	LogLevel string  `env:"RANDOMIZER_LOG_LEVEL" envDefault:"info"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that LogLevel names a slog level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), logLevels, vb)
	return vb.Build()
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
