// Package logging builds the process wide slog logger: JSON in production, coloured
// console output otherwise.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger writing to stdout at the level named by LOG_LEVEL (default info).
func New(isProduction bool) *slog.Logger {
	return NewWithWriter(os.Stdout, isProduction, LevelFromEnv())
}

// NewWithWriter returns a logger writing to w at level.
func NewWithWriter(w io.Writer, isProduction bool, level slog.Level) *slog.Logger {
	if isProduction {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// LevelFromEnv reads LOG_LEVEL: debug, info, warn or error.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name onto slog; unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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
