package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

// Header renders the title bar above the strip.
type Header struct {
	Title   string
	Current int // 0-indexed selected step
	Total   int
	Flat    bool
	Locked  bool // taps are currently rejected
	Width   int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	title := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(h.Title)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	mode := "PROCEDURAL"
	if h.Flat {
		mode = "FLAT"
	}
	content := title + sep +
		styles.Label.Render("Step ") + styles.Value.Render(fmt.Sprintf("%d/%d", h.Current+1, h.Total)) + sep +
		styles.Label.Render("Mode ") + lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).Render(mode)

	if h.Locked {
		content += sep + lipgloss.NewStyle().Foreground(styles.StatusWarn).Render("input locked")
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextPrimary).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return headerStyle.Render(content)
}
