package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Dallionking/stepper-tabs/internal/stepper"
	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

// tabGap is the number of surface-colored columns between two tabs and
// around the strip.
const tabGap = 1

// maxLabelWidth caps the label of a single tab, in runes.
const maxLabelWidth = 32

// StepperTabs renders a horizontally scrollable strip of step tabs.
type StepperTabs struct {
	Tabs   []stepper.Tab
	Config stepper.TabRenderConfig
	Width  int // viewport width in columns, <= 0 renders the whole strip
	Offset int // first visible column of the strip
}

type tabSpan struct {
	start, end int // [start, end) in strip columns
}

// Render returns the visible window of the strip.
func (s StepperTabs) Render() string {
	if len(s.Tabs) == 0 {
		return ""
	}

	line, _, total := s.layout()
	if s.Width <= 0 {
		return line
	}

	surface := lipgloss.NewStyle().Background(s.Config.SurfaceColor)
	if total <= s.Width {
		return line + surface.Render(strings.Repeat(" ", s.Width-total))
	}
	off := clamp(s.Offset, 0, total-s.Width)
	return ansi.Cut(line, off, off+s.Width)
}

// TotalWidth is the width of the whole strip, visible or not.
func (s StepperTabs) TotalWidth() int {
	_, _, total := s.layout()
	return total
}

// CenterOffset returns the offset that puts the middle of tab i in the middle
// of the viewport, as far as the strip edges allow.
func (s StepperTabs) CenterOffset(i int) int {
	_, spans, total := s.layout()
	if s.Width <= 0 || total <= s.Width || i < 0 || i >= len(spans) {
		return 0
	}
	mid := (spans[i].start + spans[i].end) / 2
	return clamp(mid-s.Width/2, 0, total-s.Width)
}

// TabAt returns the index of the tab drawn at viewport column x, or -1 when x
// falls on padding or outside the strip.
func (s StepperTabs) TabAt(x int) int {
	if x < 0 || (s.Width > 0 && x >= s.Width) {
		return -1
	}
	_, spans, total := s.layout()
	col := x
	if s.Width > 0 && total > s.Width {
		col += clamp(s.Offset, 0, total-s.Width)
	}
	for i, sp := range spans {
		if col >= sp.start && col < sp.end {
			return i
		}
	}
	return -1
}

func (s StepperTabs) layout() (string, []tabSpan, int) {
	surface := lipgloss.NewStyle().Background(s.Config.SurfaceColor)
	gap := surface.Render(strings.Repeat(" ", tabGap))

	var b strings.Builder
	spans := make([]tabSpan, 0, len(s.Tabs))
	col := 0

	b.WriteString(gap)
	col += tabGap
	for i, tab := range s.Tabs {
		if i > 0 {
			b.WriteString(gap)
			col += tabGap
		}
		cell := s.renderTab(tab)
		w := lipgloss.Width(cell)
		spans = append(spans, tabSpan{start: col, end: col + w})
		b.WriteString(cell)
		col += w
	}
	b.WriteString(gap)
	col += tabGap

	return b.String(), spans, col
}

func (s StepperTabs) renderTab(tab stepper.Tab) string {
	fg := styles.TextPrimary
	if tab.Emphasis == stepper.EmphasisMuted {
		fg = s.Config.UnselectedTabColor
	}
	bg := styles.Over(tab.Background.Color, s.Config.SurfaceColor, tab.Background.Opacity)

	label := styles.TruncateWithEllipsis(strings.ReplaceAll(tab.Label, "\n", " "), maxLabelWidth)
	return styles.Tab.
		Foreground(fg).
		Background(bg).
		Render(label)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
