package stepper

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Emphasis is the text weight of a tab label.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisMuted
)

func (e Emphasis) String() string {
	if e == EmphasisMuted {
		return "muted"
	}
	return "normal"
}

// Phase names which background rule applied to a tab.
type Phase int

const (
	PhaseNeutral Phase = iota // future step, or any unselected step in flat mode
	PhaseCurrent
	PhasePast
)

func (p Phase) String() string {
	switch p {
	case PhaseCurrent:
		return "current"
	case PhasePast:
		return "past"
	default:
		return "neutral"
	}
}

// Background is the fill of a tab. Opacity is in [0, 1]; renderers composite
// Color over the surface color when it is below 1.
type Background struct {
	Phase   Phase
	Color   lipgloss.Color
	Opacity float64
}

// Tab holds everything a renderer needs for one step.
type Tab struct {
	Index      int
	Label      string
	Emphasis   Emphasis
	Background Background

	// Tap runs the guarded selection change for this tab and reports whether
	// it was accepted.
	Tap func() bool
}

// Presenter derives tab attributes from a State and a TabRenderConfig. It
// holds no state of its own beyond the two references.
type Presenter struct {
	state *State
	cfg   TabRenderConfig
}

// NewPresenter binds state and cfg together.
func NewPresenter(state *State, cfg TabRenderConfig) *Presenter {
	return &Presenter{state: state, cfg: cfg}
}

// State returns the bound state.
func (p *Presenter) State() *State { return p.state }

// Config returns the bound config.
func (p *Presenter) Config() TabRenderConfig { return p.cfg }

// Tabs computes the attributes of every step.
func (p *Presenter) Tabs() []Tab {
	tabs := make([]Tab, p.state.Len())
	for i := range tabs {
		tabs[i] = p.Tab(i)
	}
	return tabs
}

// Tab computes the attributes of step i.
func (p *Presenter) Tab(i int) Tab {
	return Tab{
		Index:      i,
		Label:      p.Label(i),
		Emphasis:   p.Emphasis(i),
		Background: p.Background(i),
		Tap:        func() bool { return p.Tap(i) },
	}
}

// Label returns the display text of step i.
func (p *Presenter) Label(i int) string {
	if p.cfg.Procedural {
		return fmt.Sprintf("%d. %s", i+1, p.state.Step(i))
	}
	return p.state.Step(i)
}

// Emphasis returns whether step i is drawn normally or muted. Procedural mode
// mutes upcoming steps; flat mode mutes everything except the selection.
func (p *Presenter) Emphasis(i int) Emphasis {
	selected := p.state.Selected()
	if p.cfg.Procedural {
		if i > selected {
			return EmphasisMuted
		}
		return EmphasisNormal
	}
	if i == selected {
		return EmphasisNormal
	}
	return EmphasisMuted
}

// Background returns the fill of step i.
func (p *Presenter) Background(i int) Background {
	selected := p.state.Selected()
	switch {
	case p.cfg.Procedural && i < selected:
		return Background{Phase: PhasePast, Color: p.cfg.SelectedTabColor, Opacity: PastOpacity}
	case i == selected:
		return Background{Phase: PhaseCurrent, Color: p.cfg.SelectedTabColor, Opacity: 1}
	default:
		return Background{Phase: PhaseNeutral, Color: p.cfg.SurfaceColor, Opacity: 1}
	}
}

// AcceptsTap reports whether a tap on step i would currently change the
// selection.
func (p *Presenter) AcceptsTap(i int) bool {
	return p.cfg.UserInputEnabled &&
		i < p.cfg.AllowInputUntil &&
		p.state.Selected() <= p.cfg.AllowInputUntil
}

// Tap selects step i if the tap is accepted. Rejected taps leave the state
// untouched.
func (p *Presenter) Tap(i int) bool {
	if !p.AcceptsTap(i) {
		return false
	}
	p.state.SetSelected(i)
	return true
}
