package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger builds the slog logger used across the engine. The level
// string follows the LOG_LEVEL configuration values; unknown values fall
// back to info.
func SetupLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a configuration level string onto a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
