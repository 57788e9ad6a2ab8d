package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Command output styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	FailureStyle = lipgloss.NewStyle().
			Foreground(ColorFailure).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorPending)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// FormTheme returns the theme used by operator prompts
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorPrimary)
	return t
}

// Success renders a check-marked line
func Success(msg string) string {
	return SuccessStyle.Render("✓ ") + NormalStyle.Render(msg)
}

// Failure renders a cross-marked line
func Failure(msg string) string {
	return FailureStyle.Render("✗ ") + NormalStyle.Render(msg)
}

// Warning renders a warning line
func Warning(msg string) string {
	return WarningStyle.Render("! " + msg)
}
