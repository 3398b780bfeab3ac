// Package logger provides the prefixed, colourised levelled logger used across the app.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/logrusorgru/aurora"
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	color  aurora.Color
	out    *log.Logger
}

// New creates a Logger tagging every line with prefix in the given colour.
func New(prefix string, color aurora.Color, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(aurora.Green("INFO"), msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(aurora.Yellow("WARN"), msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(aurora.Red("ERROR"), msg)
}

func (l *Logger) write(level aurora.Value, msg string) {
	l.out.Printf("[%s] [%s] %s", aurora.Colorize(l.prefix, l.color), level, msg)
}
