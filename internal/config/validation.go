package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Errors collects every validation failure of a config.
type Errors []ValidationError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "invalid config: " + strings.Join(parts, "; ")
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// LogLevels lists the accepted logLevel values.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Validate checks the Config for consistency. It returns a slice of all
// discovered issues rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	// --- Input gating ---
	if cfg.AllowInputUntil < NoBound {
		errs = append(errs, ValidationError{
			Field:   "allowInputUntil",
			Message: fmt.Sprintf("must be >= 0 (or %d for no bound), got %d", NoBound, cfg.AllowInputUntil),
		})
	}
	if cfg.Bounded() && !cfg.InputEnabled {
		errs = append(errs, ValidationError{
			Field:   "allowInputUntil",
			Message: "a bound implies input is enabled; unset it or set inputEnabled",
		})
	}

	// --- Colors ---
	colors := []struct{ field, value string }{
		{"colors.selected", cfg.Colors.Selected},
		{"colors.unselected", cfg.Colors.Unselected},
		{"colors.surface", cfg.Colors.Surface},
	}
	for _, c := range colors {
		if msg := checkColor(c.value); msg != "" {
			errs = append(errs, ValidationError{Field: c.field, Message: msg})
		}
	}

	// --- Logging ---
	if !isLogLevel(cfg.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "logLevel",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(LogLevels, ", "), cfg.LogLevel),
		})
	}

	// --- Watch ---
	if cfg.Watch && cfg.StepsFile == "" {
		errs = append(errs, ValidationError{Field: "watch", Message: "requires stepsFile"})
	}

	return errs
}

func checkColor(v string) string {
	if v == "" {
		return "required field is empty"
	}
	if hexColor.MatchString(v) {
		return ""
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return ""
	}
	return fmt.Sprintf("must be a hex color or an ANSI index 0-255, got %q", v)
}

func isLogLevel(l string) bool {
	for _, lvl := range LogLevels {
		if strings.EqualFold(l, lvl) {
			return true
		}
	}
	return false
}
