package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
	"github.com/renato0307/trainmerge/internal/theme"
)

// HuhPrompter implements ports.Prompter with terminal forms
type HuhPrompter struct {
	accessible bool
}

// Verify interface compliance at compile time
var _ ports.Prompter = (*HuhPrompter)(nil)

// NewHuhPrompter creates a prompter. ACCESSIBLE=1 switches to plain line-based prompts.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{accessible: os.Getenv("ACCESSIBLE") != ""}
}

// Confirm implements Prompter.Confirm. Aborting the prompt counts as a "no".
func (p *HuhPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	value := defaultValue
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Value(&value).
				Affirmative("Yes").
				Negative("No"),
		),
	).WithAccessible(p.accessible).WithTheme(theme.FormTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("Confirmation aborted", "message", message)
			return false, nil
		}
		return false, fmt.Errorf("failed to prompt for confirmation: %w", err)
	}

	logging.Logger.Debug("Confirmation answered", "message", message, "value", value)
	return value, nil
}

// EditText implements Prompter.EditText. Aborting returns domain.ErrUserAborted.
func (p *HuhPrompter) EditText(title, initial string) (string, error) {
	text := initial
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Description("ctrl+j inserts a new line, enter submits").
				Value(&text).
				Lines(15).
				CharLimit(65536),
		),
	).WithAccessible(p.accessible).WithTheme(theme.FormTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", domain.ErrUserAborted
		}
		return "", fmt.Errorf("failed to prompt for text: %w", err)
	}
	return text, nil
}
