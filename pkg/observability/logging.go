// Package observability wires the ambient concerns: structured logging
// and OpenTelemetry tracing for the dispatch pipeline.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the structured logger used across the dispatcher.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger tagged with the component name.
func NewLogger(component string, level slog.Level) *Logger {
	return NewLoggerTo(os.Stdout, component, level)
}

// NewLoggerTo creates a JSON logger writing to the given destination.
func NewLoggerTo(w io.Writer, component string, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(
		slog.String("component", component),
	)
	return &Logger{Logger: logger}
}

// WithSession returns a logger carrying the input session id.
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("session_id", sessionID))}
}

// WithBrowsingContext returns a logger carrying the browsing context id.
func (l *Logger) WithBrowsingContext(contextID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("context_id", contextID))}
}

// ParseLevel maps a config level string onto a slog level, defaulting
// to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
