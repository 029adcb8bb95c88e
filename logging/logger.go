// Package logging provides the diagnostic logger used by the golife commands.
// It wraps log/slog so simulation output on stdout stays separate from
// structured progress and error records.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Log output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger is a leveled structured logger. It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger writing to w.
//
// The level parameter controls which messages are logged:
//   - DEBUG: All messages
//   - INFO: Info, Warn, and Error messages
//   - WARN: Warn and Error messages
//   - ERROR: Only Error messages
//
// format selects JSON records for "json" and key=value text otherwise.
func NewLogger(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child Logger that adds the given key-value pairs to every entry
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithBoard returns a child Logger tagging entries with a board name
func (l *Logger) WithBoard(name string) *Logger {
	return l.With(slog.String("board", name))
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level string) bool {
	return l.logger.Enabled(context.Background(), parseLevel(level))
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a message at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// NopLogger returns a Logger that discards all log output.
// Useful for testing or when logging is disabled.
func NopLogger() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
