// Package logger builds the structured logger. The terminal belongs to the
// game screen, so records go to a file or nowhere.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
	File   string // empty discards every record
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}

// NewHandler returns a handler writing to w in the configured format.
func (c Config) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.IsJSON() {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// New opens the log destination and returns the logger with a close func
// that must be called on exit.
func New(c Config) (*slog.Logger, func() error, error) {
	if c.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(c.NewHandler(f)).With(slog.String("service", "glyph-delve"))
	return logger, f.Close, nil
}
