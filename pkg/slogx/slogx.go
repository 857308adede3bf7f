package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls the process-wide logger for authd.
type Config struct {
	Service string
	Version string
	Env     string // "dev" enables source annotations
	Level   string // "debug", "info", "warn", "error"
	Format  string // "json" (default) or "text"
}

// New builds the service logger with service identity attrs attached.
// Callers own the returned logger; the global slog default is left alone.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.Env == "dev",
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", cfg.Service),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
}

// parseLevel falls back to info on anything slog does not recognise.
func parseLevel(lvl string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return slog.LevelInfo
	}
	return l
}
