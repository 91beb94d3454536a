// Package logger builds the charm logger used across ars. Output always goes
// to stderr so that stdout only ever carries export statements.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = log.WarnLevel

// New creates a logger writing to output (stderr when nil) at the given level.
func New(level string, output io.Writer) *log.Logger {
	if output == nil {
		output = os.Stderr
	}

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = DefaultLevel
	}

	return log.NewWithOptions(output, log.Options{
		Prefix:          "ars",
		Level:           lvl,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
