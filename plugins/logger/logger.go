// Package logger contains logger backend definitions.
package logger

import "strings"

// ILogger defines logger backend interface.
// Fields are key/value pairs.
type ILogger interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, fields ...string)
	Fatal(msg string, fields ...string)
}

// LogLevel represents minimal level printed by the backend.
type LogLevel int

const (
	// Debug describes debug log level.
	Debug LogLevel = iota
	// Info describes info log level.
	Info
	// Warning describes warn log level.
	Warning
	// Error describes error log level.
	Error
)

// LogLevelString parses log level, unknown values fall back to info.
func LogLevelString(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "dbg":
		return Debug
	case "warning", "warn":
		return Warning
	case "error", "err":
		return Error
	default:
		return Info
	}
}

// Enabled checks whether message of the level should be printed.
func (l LogLevel) Enabled(level LogLevel) bool {
	return level >= l
}
