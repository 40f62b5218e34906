// Package debug provides structured logging for consoleio.
// Enable debug output by setting CONSOLEIO_DEBUG to any non-empty value.
package debug

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// EnvVar is the environment variable that enables debug output.
const EnvVar = "CONSOLEIO_DEBUG"

// instance is the global logger; nil means disabled.
var instance *slog.Logger

// Init initializes the global debug logger based on CONSOLEIO_DEBUG.
func Init() {
	if os.Getenv(EnvVar) == "" {
		instance = nil
		return
	}
	SetOutput(os.Stderr)
}

// SetOutput enables debug logging to w in logfmt. A nil w disables it.
func SetOutput(w io.Writer) {
	if w == nil {
		instance = nil
		return
	}
	instance = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// IsEnabled returns true if debug logging is enabled.
func IsEnabled() bool {
	return instance != nil
}

// Log writes a structured log message.
// Example: time=2024-01-10T15:04:05Z level=DEBUG msg=console.promptValue type=int32 attempt=1
func Log(fn string, fields ...any) {
	if instance == nil {
		return
	}
	instance.Log(context.Background(), slog.LevelDebug, fn, fields...)
}

// Error logs an error with context.
func Error(fn string, err error, fields ...any) {
	if instance == nil {
		return
	}
	allFields := append([]any{"error", err.Error()}, fields...)
	Log(fn, allFields...)
}
