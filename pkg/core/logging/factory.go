// ============================================================================
// musterwerk - Design Pattern Tutor
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating zap-backed loggers
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"errors"
	"io"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, attached as the logger name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "json" or "console" (default: console)
	Format string

	// Destination (default: os.Stderr, so logs never mix with the session on stdout)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "console",
	}
}

// Logger wraps zap with the key/value call style used across the codebase
type Logger struct {
	zap   *zap.Logger
	level zap.AtomicLevel
}

// NewLogger creates a new logger from the given configuration
func NewLogger(cfg LoggerConfig) *Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(zapcore.AddSync(output)), level)

	logger := zap.New(core)
	if cfg.ServiceName != "" {
		logger = logger.Named(cfg.ServiceName)
	}

	return &Logger{
		zap:   logger,
		level: level,
	}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{
		zap:   zap.NewNop(),
		level: zap.NewAtomicLevelAt(zapcore.FatalLevel),
	}
}

// newEncoder creates a JSON or console encoder
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	return zapcore.NewConsoleEncoder(encoderCfg)
}

// WithLevel changes the minimum level. The level is shared with loggers
// derived through Named.
func (l *Logger) WithLevel(level Level) *Logger {
	l.level.SetLevel(level.zapLevel())
	return l
}

// Named returns a child logger; zap joins the names with a dot
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		zap:   l.zap.Named(name),
		level: l.level,
	}
}

// Enabled reports whether the given level would be written
func (l *Logger) Enabled(level Level) bool {
	return l.zap.Core().Enabled(level.zapLevel())
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zap.Debug(msg, toFields(keysAndValues...)...)
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.zap.Info(msg, toFields(keysAndValues...)...)
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zap.Warn(msg, toFields(keysAndValues...)...)
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.zap.Error(msg, toFields(keysAndValues...)...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	err := l.zap.Sync()
	// stdout/stderr report EINVAL or ENOTTY on sync under Linux
	if err != nil && (errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)) {
		return nil
	}
	return err
}

// toFields converts key-value pairs to zap fields. A trailing key without
// value and non-string keys are dropped.
func toFields(keysAndValues ...interface{}) []zap.Field {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
