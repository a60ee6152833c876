package govec

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with govec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogGrow logs a buffer reallocation.
func (l *Logger) LogGrow(oldCapacity, newCapacity int) {
	l.DebugContext(context.Background(), "vector grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
	)
}

// LogAccessError logs a rejected indexed access.
func (l *Logger) LogAccessError(op string, err error) {
	l.DebugContext(context.Background(), "access rejected",
		"op", op,
		"error", err,
	)
}

// LogSort logs a completed sort.
func (l *Logger) LogSort(n int, duration time.Duration) {
	l.DebugContext(context.Background(), "sort completed",
		"len", n,
		"duration", duration,
	)
}

// LogRemove logs removed elements.
func (l *Logger) LogRemove(removed, remaining int) {
	if removed == 0 {
		return
	}
	l.DebugContext(context.Background(), "elements removed",
		"removed", removed,
		"remaining", remaining,
	)
}
