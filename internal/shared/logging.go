// Package shared holds the small pieces of process bootstrap that
// every cmd entrypoint needs: logger setup and signal-driven shutdown.
package shared

import (
	"os"

	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output, suitable
// for an interactive terminal session.
func SetupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
