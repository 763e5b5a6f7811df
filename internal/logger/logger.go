// File: internal/logger/logger.go
package logger

import (
	"log/slog"
	"os"

	"s3lync/internal/config"
)

// NewLogger builds the process logger from the settings snapshot. The debug
// flag forces LevelDebug regardless of log_level.
func NewLogger(settings config.Settings) *slog.Logger {
	level := slog.LevelInfo
	switch settings.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if settings.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
