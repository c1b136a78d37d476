package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/stepper-tabs/internal/stepper"
	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.True(t, cfg.Procedural)
	assert.True(t, cfg.InputEnabled)
	assert.False(t, cfg.Bounded())
	assert.Equal(t, string(styles.AccentPrimary), cfg.Colors.Selected)
	assert.Equal(t, "info", cfg.LogLevel)

	tab, err := cfg.TabConfig()
	require.NoError(t, err)
	assert.Equal(t, stepper.Unbounded, tab.AllowInputUntil)
	assert.True(t, tab.UserInputEnabled)
	assert.True(t, tab.Procedural)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
procedural: false
allowInputUntil: 2
colors:
  selected: "#ff00ff"
stepsFile: steps.yaml
`), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.False(t, cfg.Procedural)
	assert.True(t, cfg.Bounded())
	assert.Equal(t, "#ff00ff", cfg.Colors.Selected)
	assert.Equal(t, string(styles.TextSecondary), cfg.Colors.Unselected)

	tab, err := cfg.TabConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, tab.AllowInputUntil)
	assert.True(t, tab.UserInputEnabled)
	assert.False(t, tab.Procedural)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STEPPER_COLORS_SURFACE", "#123456")
	t.Setenv("STEPPER_INPUTENABLED", "false")

	v := newViper()
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "#123456", cfg.Colors.Surface)
	assert.False(t, cfg.InputEnabled)

	tab, err := cfg.TabConfig()
	require.NoError(t, err)
	assert.False(t, tab.UserInputEnabled)
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := newViper()
	v.Set("colors.selected", "blue")
	v.Set("logLevel", "loud")

	_, err := Load(v)
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"colors.selected", "logLevel"}, fields)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Procedural:      true,
			InputEnabled:    true,
			AllowInputUntil: NoBound,
			Colors:          Colors{Selected: "#fff", Unselected: "245", Surface: "#000000"},
			LogLevel:        "DEBUG",
		}
	}

	cfg := base()
	assert.Empty(t, Validate(&cfg))

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative bound", func(c *Config) { c.AllowInputUntil = -5 }, "allowInputUntil"},
		{"bound without input", func(c *Config) { c.AllowInputUntil = 1; c.InputEnabled = false }, "allowInputUntil"},
		{"empty color", func(c *Config) { c.Colors.Surface = "" }, "colors.surface"},
		{"ansi out of range", func(c *Config) { c.Colors.Unselected = "300" }, "colors.unselected"},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, "logLevel"},
		{"watch without file", func(c *Config) { c.Watch = true }, "watch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			errs := Validate(&cfg)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestFindUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	want := filepath.Join(root, DefaultStepsFile)
	require.NoError(t, os.WriteFile(want, []byte("steps: [x]\n"), 0o644))

	got, err := findUp(nested, DefaultStepsFile)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = findUp(nested, "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath("/etc/stepper/stepper.yaml", ""))
	assert.Equal(t, "/abs/steps.yaml", ResolvePath("/etc/stepper/stepper.yaml", "/abs/steps.yaml"))
	assert.Equal(t, "/etc/stepper/steps.yaml", ResolvePath("/etc/stepper/stepper.yaml", "steps.yaml"))

	got := ResolvePath("", "steps.yaml")
	assert.True(t, filepath.IsAbs(got))
}
