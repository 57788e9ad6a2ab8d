package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - branch names
)

// Outcome colors
const (
	ColorFailure Color = "196" // Bright red
	ColorPending Color = "3"   // Yellow
	ColorSuccess Color = "2"   // Green
	ColorWarning Color = "214" // Orange
)

// UI semantic colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSpinner   Color = "205" // Pink
)
