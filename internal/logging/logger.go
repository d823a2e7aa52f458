// Package logging builds the slog loggers used across fsdiff and provides
// helpers for consistent field names.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Off disables logging entirely.
const Off = "off"

// New creates a logger writing to w at the given level. format can be "json"
// or "text" (default is text, since fsdiff logs to a terminal). An empty or
// "off" level returns a logger that discards everything.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, enabled := ParseLevel(level)
	if !enabled {
		return Discard()
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
		// Add source location when debugging
		AddSource: lvl <= slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops all records.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a string log level to slog.Level.
// Valid values: "debug", "info", "warn", "error" and "off".
// The second return value is false when logging should be disabled. Unknown
// values fall back to info.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", Off:
		return slog.LevelInfo, false
	case "debug", "trace":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, true
	}
}
