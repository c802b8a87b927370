package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Logger interface for exporter logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// SlogLogger implements Logger on top of a structured slog.Logger.
// Messages are logged at Level; trailing newlines are trimmed.
type SlogLogger struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewSlogLogger creates a Logger writing info-level records to l.
// A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{Logger: l, Level: slog.LevelInfo}
}

// At returns a copy of sl logging at level
func (sl *SlogLogger) At(level slog.Level) *SlogLogger {
	return &SlogLogger{Logger: sl.Logger, Level: level}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	sl.Logger.Log(context.Background(), sl.Level, msg)
}

// DiscardLogger drops everything
type DiscardLogger struct{}

func (DiscardLogger) Printf(format string, args ...interface{}) {}

// LevelFromFlags returns the slog level selected by command line verbosity flags:
//   - vv: debug
//   - v: info
//   - q: error
//   - (default: warn)
//
// Flags are checked in that order, so vv wins over q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
