package stepper

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

// Unbounded is the AllowInputUntil value that places no extra restriction on
// taps.
const Unbounded = math.MaxInt

// PastOpacity is the opacity of the selected color used for steps before the
// selected one in procedural mode.
const PastOpacity = 0.5

// TabRenderConfig controls how tabs are labeled, colored and which taps are
// accepted. Build it with NewConfig or NewBoundedConfig.
type TabRenderConfig struct {
	UserInputEnabled   bool
	AllowInputUntil    int
	SelectedTabColor   lipgloss.Color
	UnselectedTabColor lipgloss.Color
	SurfaceColor       lipgloss.Color
	Procedural         bool
}

// Option customises a TabRenderConfig.
type Option func(*TabRenderConfig)

// WithSelectedColor sets the color of the selected (and past) tabs.
func WithSelectedColor(c lipgloss.Color) Option {
	return func(cfg *TabRenderConfig) { cfg.SelectedTabColor = c }
}

// WithUnselectedColor sets the foreground color of de-emphasized tabs.
func WithUnselectedColor(c lipgloss.Color) Option {
	return func(cfg *TabRenderConfig) { cfg.UnselectedTabColor = c }
}

// WithSurfaceColor sets the host background that neutral tabs match.
func WithSurfaceColor(c lipgloss.Color) Option {
	return func(cfg *TabRenderConfig) { cfg.SurfaceColor = c }
}

// WithProcedural switches between numbered progress mode (true) and flat
// single-selection mode (false).
func WithProcedural(procedural bool) Option {
	return func(cfg *TabRenderConfig) { cfg.Procedural = procedural }
}

// NewConfig builds a config whose taps are gated only by inputEnabled.
func NewConfig(inputEnabled bool, opts ...Option) (TabRenderConfig, error) {
	return build(inputEnabled, Unbounded, opts)
}

// NewBoundedConfig builds a config with input always enabled and taps limited
// to indices below allowInputUntil.
func NewBoundedConfig(allowInputUntil int, opts ...Option) (TabRenderConfig, error) {
	if allowInputUntil < 0 {
		return TabRenderConfig{}, fmt.Errorf("%w: allowInputUntil must be >= 0, got %d", ErrInvalidArgument, allowInputUntil)
	}
	return build(true, allowInputUntil, opts)
}

func build(inputEnabled bool, until int, opts []Option) (TabRenderConfig, error) {
	cfg := TabRenderConfig{
		UserInputEnabled:   inputEnabled,
		AllowInputUntil:    until,
		SelectedTabColor:   styles.AccentPrimary,
		UnselectedTabColor: styles.TextSecondary,
		SurfaceColor:       styles.BgDeep,
		Procedural:         true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.SelectedTabColor == "":
		return TabRenderConfig{}, fmt.Errorf("%w: selected tab color is empty", ErrInvalidArgument)
	case cfg.UnselectedTabColor == "":
		return TabRenderConfig{}, fmt.Errorf("%w: unselected tab color is empty", ErrInvalidArgument)
	case cfg.SurfaceColor == "":
		return TabRenderConfig{}, fmt.Errorf("%w: surface color is empty", ErrInvalidArgument)
	}
	return cfg, nil
}

// Bounded reports whether taps are limited by AllowInputUntil.
func (c TabRenderConfig) Bounded() bool {
	return c.AllowInputUntil != Unbounded
}
