package logging

import (
	"fmt"
	"io"
	"time"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger writes leveled log lines to a sink. A nil *Logger discards
// everything, so callers may pass one through without nil checks.
type Logger struct {
	level int
	sink  io.Writer
}

// CreateLogger returns a new Logger which writes messages at or above
// the given level to sink
func CreateLogger(level int, sink io.Writer) *Logger {
	return &Logger{level: level, sink: sink}
}

// Log writes a formatted message at the given level
func (l *Logger) Log(level int, format string, args ...interface{}) {
	if l == nil || l.sink == nil || level < l.level {
		return
	}
	fmt.Fprintf(l.sink, "%s [%s] %s\n", time.Now().Format(time.RFC3339), LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Warn writes a formatted message at WarnLevel
func (l *Logger) Warn(format string, args ...interface{}) {
	l.Log(WarnLevel, format, args...)
}

// Debug writes a formatted message at DebugLevel
func (l *Logger) Debug(format string, args ...interface{}) {
	l.Log(DebugLevel, format, args...)
}
