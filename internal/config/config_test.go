package config_test

import (
	"log/slog"
	"testing"

	"github.com/randomtoy/pfaas-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.MaxShoeDecks != 8 {
		t.Errorf("MaxShoeDecks = %d", cfg.MaxShoeDecks)
	}
	if cfg.MaxStreamLength != 512 {
		t.Errorf("MaxStreamLength = %d", cfg.MaxStreamLength)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_SHOE_DECKS", "2")
	t.Setenv("MAX_STREAM_LENGTH", "16")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":9999" || cfg.MaxShoeDecks != 2 || cfg.MaxStreamLength != 16 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for invalid LOG_LEVEL")
	}
}

func TestLoad_InvalidLimits(t *testing.T) {
	t.Setenv("MAX_SHOE_DECKS", "0")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for MAX_SHOE_DECKS=0")
	}
}
