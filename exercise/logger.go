package exercise

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with exercise-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.String()),
	}
}

// LogTask logs the evaluation of a single task. Use WithOp to tag the
// entry with the task's operation.
// Failed tasks are logged at warn level: they are reported in the results
// and do not abort the run.
func (l *Logger) LogTask(ctx context.Context, id string, duration time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "task failed",
			"id", id,
			"kind", errorKind(err),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "task completed",
			"id", id,
			"duration", duration,
		)
	}
}

// LogRun logs a completed batch run.
func (l *Logger) LogRun(ctx context.Context, count, failed int, duration time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "run completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
			"duration", duration,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"count", count,
			"duration", duration,
		)
	}
}

// LogFile logs reading or writing an exercise file.
func (l *Logger) LogFile(ctx context.Context, action, path string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, action+" failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, action+" completed",
			"path", path,
			"records", records,
		)
	}
}
