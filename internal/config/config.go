// Package config loads the stepper settings from flags, environment and an
// optional config file through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/Dallionking/stepper-tabs/internal/stepper"
	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

// EnvPrefix is prepended to every environment override, e.g.
// STEPPER_COLORS_SELECTED.
const EnvPrefix = "STEPPER"

// NoBound is the allowInputUntil value meaning taps are not bounded.
const NoBound = -1

// Config is the full settings schema.
type Config struct {
	Procedural      bool   `mapstructure:"procedural"`
	InputEnabled    bool   `mapstructure:"inputEnabled"`
	AllowInputUntil int    `mapstructure:"allowInputUntil"`
	Colors          Colors `mapstructure:"colors"`
	StepsFile       string `mapstructure:"stepsFile"`
	Watch           bool   `mapstructure:"watch"`
	LogLevel        string `mapstructure:"logLevel"`
	LogFile         string `mapstructure:"logFile"`
}

// Colors holds the tab palette. Values are hex triplets or ANSI indexes.
type Colors struct {
	Selected   string `mapstructure:"selected"`
	Unselected string `mapstructure:"unselected"`
	Surface    string `mapstructure:"surface"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("procedural", true)
	v.SetDefault("inputEnabled", true)
	v.SetDefault("allowInputUntil", NoBound)
	v.SetDefault("colors.selected", string(styles.AccentPrimary))
	v.SetDefault("colors.unselected", string(styles.TextSecondary))
	v.SetDefault("colors.surface", string(styles.BgDeep))
	v.SetDefault("stepsFile", "")
	v.SetDefault("watch", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
}

// BindEnv makes every key overridable from STEPPER_* variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, Errors(errs)
	}
	return &cfg, nil
}

// Bounded reports whether taps are limited by AllowInputUntil.
func (c *Config) Bounded() bool {
	return c.AllowInputUntil != NoBound
}

// TabConfig converts the settings into a render config, picking the bounded
// construction path when allowInputUntil is set.
func (c *Config) TabConfig() (stepper.TabRenderConfig, error) {
	opts := []stepper.Option{
		stepper.WithSelectedColor(lipgloss.Color(c.Colors.Selected)),
		stepper.WithUnselectedColor(lipgloss.Color(c.Colors.Unselected)),
		stepper.WithSurfaceColor(lipgloss.Color(c.Colors.Surface)),
		stepper.WithProcedural(c.Procedural),
	}
	if c.Bounded() {
		return stepper.NewBoundedConfig(c.AllowInputUntil, opts...)
	}
	return stepper.NewConfig(c.InputEnabled, opts...)
}
