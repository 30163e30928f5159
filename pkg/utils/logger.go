package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the verbosity level of logging
type LogLevel int

const (
	ErrorLevel LogLevel = iota
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// String returns a string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a level name such as "debug" into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case ErrorLevel:
		return zapcore.ErrorLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Logger keeps printf-style levelled logging with indentation and
// category helpers on top of a zap logger. Trace messages go out at zap's
// debug level but only when the Logger itself is at TraceLevel.
type Logger struct {
	Level      LogLevel
	Prefix     string
	IndentSize int
	indent     int
	zap        *zap.Logger
	sugar      *zap.SugaredLogger
}

// NewLogger creates a logger with the specified verbosity level. Development
// mode uses zap's console encoder, otherwise JSON production output.
func NewLogger(level LogLevel, development bool) (*Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return WrapLogger(z, level), nil
}

// WrapLogger adapts an existing zap logger
func WrapLogger(z *zap.Logger, level LogLevel) *Logger {
	return &Logger{
		Level:      level,
		IndentSize: 2,
		zap:        z,
		sugar:      z.Sugar(),
	}
}

// NopLogger returns a logger that discards everything
func NopLogger() *Logger {
	return WrapLogger(zap.NewNop(), ErrorLevel)
}

// Zap returns the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// With returns a child logger carrying structured fields
func (l *Logger) With(fields ...zap.Field) *Logger {
	child := *l
	child.zap = l.zap.With(fields...)
	child.sugar = child.zap.Sugar()
	return &child
}

// SetPrefix sets a prefix for all log messages
func (l *Logger) SetPrefix(prefix string) {
	l.Prefix = prefix
}

// Indent increases the indentation level
func (l *Logger) Indent() {
	l.indent++
}

// Outdent decreases the indentation level
func (l *Logger) Outdent() {
	if l.indent > 0 {
		l.indent--
	}
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level > l.Level {
		return
	}

	var builder strings.Builder
	if l.Prefix != "" {
		builder.WriteString(l.Prefix)
		builder.WriteString(": ")
	}
	if l.indent > 0 {
		builder.WriteString(strings.Repeat(" ", l.indent*l.IndentSize))
	}
	builder.WriteString(format)
	msg := builder.String()

	switch level {
	case ErrorLevel:
		l.sugar.Errorf(msg, args...)
	case WarningLevel:
		l.sugar.Warnf(msg, args...)
	case InfoLevel:
		l.sugar.Infof(msg, args...)
	default:
		l.sugar.Debugf(msg, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ErrorLevel, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(WarningLevel, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(InfoLevel, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DebugLevel, format, args...)
}

// Trace logs a trace message (highest verbosity)
func (l *Logger) Trace(format string, args ...interface{}) {
	l.log(TraceLevel, format, args...)
}

// Oracle logs adder oracle checks
func (l *Logger) Oracle(format string, args ...interface{}) {
	l.log(TraceLevel, "ORACLE: "+format, args...)
}

// Localize logs fault localization progress
func (l *Logger) Localize(format string, args ...interface{}) {
	l.log(DebugLevel, "LOCALIZE: "+format, args...)
}

// Trial logs individual swap trials
func (l *Logger) Trial(format string, args ...interface{}) {
	l.log(TraceLevel, "TRIAL: "+format, args...)
}

// Repair logs committed repairs and unresolved clusters
func (l *Logger) Repair(format string, args ...interface{}) {
	l.log(DebugLevel, "REPAIR: "+format, args...)
}
