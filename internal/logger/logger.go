// Package logger provides the process-wide structured logger. Everything the
// backend reports goes through it: request lines from the HTTP middleware,
// seeding and shutdown events from main, and blob-cleanup failures, which are
// logged here precisely because they are never surfaced to API callers.
package logger

import (
	"sync"
)

// Levels accepted by Get. Anything else falls back to info.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the singleton logger. The first call fixes the level;
// subsequent calls ignore their argument and return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}
