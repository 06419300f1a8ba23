// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"go.trai.ch/tinystr/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing human-readable output to stderr.
func New() ports.Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing to w.
func NewWithOutput(w io.Writer) ports.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}
