// Package logging provides the diagnostic logger used by cardfolio.
//
// Diagnostics (missing folders, skipped catalog entries, duplicate cards)
// go to stderr through zerolog, human readable when stderr is a terminal and
// JSON otherwise. The level is read from BINDER_LOG_LEVEL (default "info").
package logging

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel is the environment variable holding the log level.
const EnvLogLevel = "BINDER_LOG_LEVEL"

var defaultLogger = newDefault()

func newDefault() zerolog.Logger {
	var w io.Writer = os.Stderr
	if isatty() && os.Getenv("LOG_FORMAT") != "json" {
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}
	return zerolog.New(w).Level(level()).With().Timestamp().Logger()
}

// Default returns the logger.
func Default() *zerolog.Logger { return &defaultLogger }

// SetVerbose lowers the level to debug.
func SetVerbose() { defaultLogger = defaultLogger.Level(zerolog.DebugLevel) }

// Debug, Info and Warn start a new event on the process logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }
func Info() *zerolog.Event  { return defaultLogger.Info() }
func Warn() *zerolog.Event  { return defaultLogger.Warn() }

// Capture redirects the logger into a buffer (JSON lines, all levels) and
// returns it with a function restoring the previous logger.
func Capture() (*bytes.Buffer, func()) {
	old := defaultLogger
	buf := &bytes.Buffer{}
	defaultLogger = zerolog.New(buf).Level(zerolog.TraceLevel)
	return buf, func() { defaultLogger = old }
}

// isatty checks if stderr is a terminal.
func isatty() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// level returns the log level from the environment, info by default.
func level() zerolog.Level {
	s := os.Getenv(EnvLogLevel)
	if s == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}
