package logger

import (
	"io"
	"os"

	"github.com/go-home-io/gluehome/plugins/logger"
	"github.com/sirupsen/logrus"
)

// Structured JSON logger.
type jsonLogger struct {
	logger *logrus.Logger
}

// NewJSONLogger constructs a new logrus based logger.
func NewJSONLogger(level logger.LogLevel, out io.Writer) logger.ILogger {
	if nil == out {
		out = os.Stdout
	}

	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(out)
	l.SetLevel(logrusLevel(level))
	l.ExitFunc = func(code int) {
		exitFunc(code)
	}

	return &jsonLogger{
		logger: l,
	}
}

// Debug prints debug level message.
func (p *jsonLogger) Debug(msg string, fields ...string) {
	p.entry(fields...).Debug(msg)
}

// Info prints info level message.
func (p *jsonLogger) Info(msg string, fields ...string) {
	p.entry(fields...).Info(msg)
}

// Warn prints warning level message.
func (p *jsonLogger) Warn(msg string, fields ...string) {
	p.entry(fields...).Warn(msg)
}

// Error prints error level message.
func (p *jsonLogger) Error(msg string, fields ...string) {
	p.entry(fields...).Error(msg)
}

// Fatal prints fatal level message and exits.
func (p *jsonLogger) Fatal(msg string, fields ...string) {
	p.entry(fields...).Fatal(msg)
}

// Converts key/value pairs into logrus fields.
func (p *jsonLogger) entry(fields ...string) *logrus.Entry {
	f := make(logrus.Fields)
	for k, v := range withFields(fields...) {
		f[k] = v
	}

	return p.logger.WithFields(f)
}

// Maps log level.
func logrusLevel(level logger.LogLevel) logrus.Level {
	switch level {
	case logger.Debug:
		return logrus.DebugLevel
	case logger.Warning:
		return logrus.WarnLevel
	case logger.Error:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
