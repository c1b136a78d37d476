// Package logx builds the pslog loggers used by the CLI and the TUI.
package logx

import (
	"io"
	"strings"

	"pkt.systems/pslog"
)

// Level maps a config log level name to a pslog level. Unknown names map to
// info.
func Level(name string) pslog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return pslog.TraceLevel
	case "debug":
		return pslog.DebugLevel
	case "warn":
		return pslog.WarnLevel
	case "error":
		return pslog.ErrorLevel
	default:
		return pslog.InfoLevel
	}
}

// Structured returns a JSON-lines logger writing to w. The TUI uses it so log
// output never lands on the alternate screen.
func Structured(w io.Writer, level string) pslog.Logger {
	return pslog.NewWithOptions(w, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      Level(level),
	})
}

// Console returns a human-readable logger writing to w, used for command
// output outside the TUI.
func Console(w io.Writer, level string, noColor bool) pslog.Logger {
	return pslog.NewWithOptions(w, pslog.Options{
		Mode:     pslog.ModeConsole,
		NoColor:  noColor,
		MinLevel: Level(level),
	})
}

// Discard returns a logger that drops everything.
func Discard() pslog.Logger {
	return Structured(io.Discard, "error")
}

// WithSteps annotates log with the step count and title of a step set.
func WithSteps(log pslog.Logger, title string, count int) pslog.Logger {
	if title != "" {
		log = log.With("title", title)
	}
	return log.With("steps", count)
}
