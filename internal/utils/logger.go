package utils

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger provides a centralized logging mechanism for grepninja.
// Records go to stderr and never mix with search output on stdout.
type Logger struct {
	base *log.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the default logger instance (singleton pattern)
func GetLogger() *Logger {
	once.Do(func() {
		defaultLogger = NewLogger(os.Stderr)
	})
	return defaultLogger
}

// NewLogger creates a new logger that writes to w at warning level
func NewLogger(w io.Writer) *Logger {
	base := log.NewWithOptions(w, log.Options{
		Prefix: "grepninja",
		Level:  log.WarnLevel,
	})
	return &Logger{base: base}
}

// SetVerbose switches debug records on or off
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.base.SetLevel(log.DebugLevel)
		return
	}
	l.base.SetLevel(log.WarnLevel)
}

// SetOutput redirects log records to w
func (l *Logger) SetOutput(w io.Writer) {
	l.base.SetOutput(w)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.base.Warnf(format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.base.Debugf(format, args...)
}
