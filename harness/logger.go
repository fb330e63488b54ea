// SPDX-License-Identifier: MIT

package harness

import (
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with harness-specific helpers so phase records
// carry consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, the logger discards everything.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable lines to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))}
}

// WithKind tags every record with the index kind under measurement.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{Logger: l.Logger.With("kind", kind)}
}

// LogSample records a finished phase.
func (l *Logger) LogSample(s Sample) {
	if s.HasMatches {
		l.Debug("phase completed",
			"phase", s.Phase,
			"elapsed_ms", s.Millis(),
			"items", s.Items,
			"matches", s.Matches,
		)
		return
	}
	l.Debug("phase completed",
		"phase", s.Phase,
		"elapsed_ms", s.Millis(),
		"items", s.Items,
	)
}

// LogRow records one sweep row.
func (l *Logger) LogRow(r SweepRow) {
	l.Info("sweep row",
		"sweep", r.SweepIndex,
		"dim", r.MatrixDim,
		"values", r.ValueCount,
		"fill_ms", r.FillMillis,
		"searches", r.SearchCount,
		"search_ms", r.SearchMillis,
		"matches", r.Matches,
	)
}
