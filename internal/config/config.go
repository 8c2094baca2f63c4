// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevelName string `env:"LOG_LEVEL" envDefault:"info"`

	// MaxShoeDecks caps GET /v1/shoe; the canonical shoe uses 8 decks.
	MaxShoeDecks int `env:"MAX_SHOE_DECKS" envDefault:"8"`

	// MaxStreamLength caps the hit and flower stream prefixes a single
	// request may ask for. Streams are infinite; responses are not.
	MaxStreamLength int `env:"MAX_STREAM_LENGTH" envDefault:"512"`

	LogLevel slog.Level
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if c.MaxShoeDecks < 1 {
		return Config{}, fmt.Errorf("MAX_SHOE_DECKS must be at least 1, got %d", c.MaxShoeDecks)
	}
	if c.MaxStreamLength < 1 {
		return Config{}, fmt.Errorf("MAX_STREAM_LENGTH must be at least 1, got %d", c.MaxStreamLength)
	}

	level, err := parseLogLevel(c.LogLevelName)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
