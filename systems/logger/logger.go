// Package logger provides wrapper around gluehome logger implementation.
package logger

import (
	"io"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/logger"
	"github.com/pkg/errors"
)

const (
	// TypeConsole describes colored console output.
	TypeConsole = "console"
	// TypeJSON describes structured JSON output.
	TypeJSON = "json"
)

// Logger provider wrapper implementation.
type provider struct {
	logger logger.ILogger
}

// ConstructLogger has data required for a new logger.
type ConstructLogger struct {
	LoggerType string
	Level      string
	Out        io.Writer
}

// NewLoggerProvider constructs a new logger.
func NewLoggerProvider(ctor *ConstructLogger) (common.ILoggerProvider, error) {
	level := logger.LogLevelString(ctor.Level)

	var backend logger.ILogger
	switch ctor.LoggerType {
	case "", TypeConsole:
		backend = NewConsoleLogger(level, ctor.Out)
	case TypeJSON:
		backend = NewJSONLogger(level, ctor.Out)
	default:
		return nil, errors.Errorf("unknown logger type %s", ctor.LoggerType)
	}

	return &provider{logger: backend}, nil
}

// Debug sends debug level message.
func (p *provider) Debug(msg string, fields ...string) {
	p.logger.Debug(msg, fields...)
}

// Info sends info level message.
func (p *provider) Info(msg string, fields ...string) {
	p.logger.Info(msg, fields...)
}

// Warn sends warning level message.
func (p *provider) Warn(msg string, fields ...string) {
	p.logger.Warn(msg, fields...)
}

// Error sends error level message.
func (p *provider) Error(msg string, err error, fields ...string) {
	p.logger.Error(msg, withError(err, fields)...)
}

// Fatal sends fatal level message and exits.
func (p *provider) Fatal(msg string, err error, fields ...string) {
	p.logger.Fatal(msg, withError(err, fields)...)
}

// Appends error to the fields.
func withError(err error, fields []string) []string {
	if nil == err {
		return fields
	}

	return append(fields, common.LogErrorToken, err.Error())
}
