package buffer

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with buffer-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithStride adds a stride field to the logger.
func (l *Logger) WithStride(stride int) *Logger {
	return &Logger{
		Logger: l.Logger.With("stride", stride),
	}
}

// LogAlloc logs the outcome of a buffer construction.
func (l *Logger) LogAlloc(capacity, stride, totalSize int, err error) {
	if err != nil {
		l.Error("allocation failed",
			"capacity", capacity,
			"stride", stride,
			"total_size", totalSize,
			"error", err,
		)
	} else {
		l.Debug("allocation completed",
			"capacity", capacity,
			"stride", stride,
			"total_size", totalSize,
		)
	}
}

// LogRelease logs the release of a buffer's backing allocation.
func (l *Logger) LogRelease(totalSize int, err error) {
	if err != nil {
		l.Error("release failed",
			"total_size", totalSize,
			"error", err,
		)
	} else {
		l.Debug("release completed",
			"total_size", totalSize,
		)
	}
}
