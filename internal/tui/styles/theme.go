package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Tabs
// ---------------------------------------------------------------------------

// Tab is the base style of a single stepper tab: bold, one line, padded on
// both sides. Foreground and background are applied per tab.
var Tab = lipgloss.NewStyle().
	Bold(true).
	PaddingLeft(2).
	PaddingRight(2)

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels. Pass uppercase strings for the
// conventional LABEL look (lipgloss does not provide an uppercase transform).
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// Swatch renders a two-cell block filled with c followed by its name.
func Swatch(c lipgloss.Color) string {
	block := lipgloss.NewStyle().Background(c).Render("  ")
	return block + " " + Value.Render(string(c))
}

// ---------------------------------------------------------------------------
// Divider
// ---------------------------------------------------------------------------

// Divider returns a horizontal rule of the given width using the ─ character
// rendered in BorderNormal color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.Repeat("─", width)
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(line)
}
