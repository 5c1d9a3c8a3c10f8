package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/go-home-io/gluehome/plugins/logger"
)

// Terminates process after fatal message.
var exitFunc = os.Exit

// Default console logger.
type consoleLogger struct {
	level logger.LogLevel
	out   io.Writer
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	p.output(logger.Debug, msg, withFields(fields...), color.FgCyan)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	p.output(logger.Info, msg, withFields(fields...), color.FgGreen)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	p.output(logger.Warning, msg, withFields(fields...), color.FgYellow)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, fields ...string) {
	p.output(logger.Error, msg, withFields(fields...), color.FgRed)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, fields ...string) {
	p.output(logger.Error, msg, withFields(fields...), color.FgRed)
	exitFunc(1)
}

// NewConsoleLogger constructs a new console logger.
func NewConsoleLogger(level logger.LogLevel, out io.Writer) logger.ILogger {
	if nil == out {
		out = color.Output
	}

	return &consoleLogger{
		level: level,
		out:   out,
	}
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) map[string]string {
	fLen := len(fields)
	result := make(map[string]string, int(fLen/2))
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Prepares final string.
func (p *consoleLogger) output(level logger.LogLevel, msg string, fields map[string]string, c color.Attribute) {
	if !p.level.Enabled(level) {
		return
	}

	newM := fmt.Sprintf("%s   %s", time.Now().Local().Format(time.StampMilli), msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		newM = fmt.Sprintf("%s\n          %s: %s", newM, k, fields[k])
	}

	msgC := color.New(c)
	//noinspection GoUnhandledErrorResult
	msgC.Fprintln(p.out, newM) // nolint: gosec
}
