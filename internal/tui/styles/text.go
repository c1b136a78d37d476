package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ---------------------------------------------------------------------------
// Convenience color helpers
// ---------------------------------------------------------------------------

// Cyan renders s in AccentPrimary (electric cyan).
func Cyan(s string) string {
	return lipgloss.NewStyle().Foreground(AccentPrimary).Render(s)
}

// Dim renders s in TextMuted.
func Dim(s string) string {
	return lipgloss.NewStyle().Foreground(TextMuted).Render(s)
}

// ---------------------------------------------------------------------------
// Compositing
// ---------------------------------------------------------------------------

// Over composites fg at the given opacity over bg and returns the resulting
// solid color. Terminals have no alpha channel, so translucent fills are
// flattened against the color they sit on. Both hex triplets and ANSI 256
// indexes are accepted. A color that is neither is returned unblended.
func Over(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return fg
	case opacity <= 0:
		return bg
	}

	f, okF := rgb(fg)
	b, okB := rgb(bg)
	if !okF || !okB {
		return fg
	}
	return lipgloss.Color(b.BlendRgb(f, opacity).Clamped().Hex())
}

// rgb resolves a lipgloss color to its RGB value.
func rgb(c lipgloss.Color) (colorful.Color, bool) {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col, true
	}
	n, err := strconv.Atoi(string(c))
	if err != nil || n < 0 || n > 255 {
		return colorful.Color{}, false
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(n)), true
}

// ---------------------------------------------------------------------------
// Text utilities
// ---------------------------------------------------------------------------

// TruncateWithEllipsis shortens s to max runes, appending "..." when
// truncation occurs. If max is less than 4 the string is simply cut.
func TruncateWithEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
