// Package logging defines the project's small, framework-agnostic logging
// contract and its zap-backed production implementation.
package logging

import (
	"go.uber.org/zap"
)

// Logger is a deliberately small structured logging interface. Components
// receive it via their constructors so tests can inject recording doubles.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning.
	Warn(msg string, fields ...Field)

	// Error logs an error.
	Error(msg string, fields ...Field)

	// With returns a child logger with persistent fields.
	With(fields ...Field) Logger
}

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value interface{}
}

// ZapLogger adapts a *zap.Logger to the Logger contract.
type ZapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps an already-built zap logger. component is optional
// and becomes a persistent field when non-empty.
func NewZapLogger(l *zap.Logger, component string) *ZapLogger {
	if component != "" {
		l = l.With(zap.String("component", component))
	}
	return &ZapLogger{l: l}
}

// NewNop returns a Logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{l: zap.NewNop()}
}

func (z *ZapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, zapFields(fields)...) }
func (z *ZapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, zapFields(fields)...) }
func (z *ZapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, zapFields(fields)...) }
func (z *ZapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, zapFields(fields)...) }

func (z *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{l: z.l.With(zapFields(fields)...)}
}

// Sync flushes buffered log entries; call before process exit.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
