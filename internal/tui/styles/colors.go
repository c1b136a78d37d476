package styles

import "github.com/charmbracelet/lipgloss"

// Gotham Night -- Dark Palette
// Deep midnight backgrounds with electric cyan accents.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0a0e14") // Deepest -- main background, neutral tab fill
	BgPanel   = lipgloss.Color("#11151c") // Panel/card background
	BgSurface = lipgloss.Color("#1a1f2e") // Elevated surface

	// Accents
	AccentPrimary   = lipgloss.Color("#4fc1ff") // Cyan -- default selected tab color
	AccentSecondary = lipgloss.Color("#39c5bb") // Teal -- secondary info
	AccentGold      = lipgloss.Color("#f5a623") // Gold -- highlights

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed -- default unselected tab color
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#2d3748") // Subtle
	BorderFocused = lipgloss.Color("#4fc1ff") // Cyan focus ring
)
