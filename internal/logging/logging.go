// Package logging configures envlit's structured logger. All log output
// goes to stderr so stdout stays clean for the shell to source -- the one
// thing envlit must never pollute.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging configures the global slog default logger with level and
// format. format should be "json" for JSON output or anything else
// (including empty) for human-readable text. Safe to call more than once.
func SetupLogging(level slog.Level, format string) {
	SetupLoggingWithWriter(level, format, os.Stderr)
}

// SetupLoggingWithWriter is SetupLogging with an explicit writer, for tests
// that want to capture log output instead of writing to stderr.
func SetupLoggingWithWriter(level slog.Level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ResolveLogLevel determines the effective slog.Level from CLI flags and the
// ENVLIT_DEBUG environment variable, highest priority first:
//
//  1. ENVLIT_DEBUG=1 -> slog.LevelDebug
//  2. --verbose -> slog.LevelDebug
//  3. --quiet -> slog.LevelError
//  4. default -> slog.LevelInfo
//
// If both verbose and quiet are set, verbose wins.
func ResolveLogLevel(verbose, quiet bool) slog.Level {
	if os.Getenv("ENVLIT_DEBUG") == "1" {
		return slog.LevelDebug
	}
	if verbose {
		return slog.LevelDebug
	}
	if quiet {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ResolveLogFormat determines the effective log format, highest priority
// first:
//
//  1. ENVLIT_LOG_FORMAT environment variable
//  2. fallback (typically the global settings file's log_format)
//  3. "text"
//
// Returns "json" when the winning value is "json" (case-insensitive),
// otherwise "text".
func ResolveLogFormat(fallback string) string {
	if v := os.Getenv("ENVLIT_LOG_FORMAT"); v != "" {
		return normalizeLogFormat(v)
	}
	if fallback != "" {
		return normalizeLogFormat(fallback)
	}
	return "text"
}

func normalizeLogFormat(format string) string {
	if strings.EqualFold(format, "json") {
		return "json"
	}
	return "text"
}

// NewLogger returns a child logger derived from the global default logger,
// tagged with a "component" attribute for filtering log output by
// subsystem (e.g. "profile", "discover", "tracker").
func NewLogger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
