// Package logger provides the debug log channel for vity.
//
// History-recording failures must never surface as user-facing errors, so
// everything that degrades silently reports here instead. The channel is off
// by default and enabled with VITY_DEBUG=1 (or the debug config section).
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvDebug is the environment variable that enables debug output.
const EnvDebug = "VITY_DEBUG"

// New creates a logger writing human-readable output to w at debug level.
func New(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// FromEnv returns a stderr debug logger when VITY_DEBUG is set to a truthy
// value, and a no-op logger otherwise.
func FromEnv() zerolog.Logger {
	switch os.Getenv(EnvDebug) {
	case "1", "true", "yes", "on":
		return New(os.Stderr)
	}
	return Nop()
}
