//go:build darwin

package sound

import (
	"os/exec"

	"github.com/renato0307/trainmerge/internal/ports"
)

// playForOutcome plays sounds on macOS using afplay
func playForOutcome(outcome ports.Outcome) error {
	soundFiles := []string{
		"/System/Library/Sounds/Glass.aiff",
		"/System/Library/Sounds/Hero.aiff",
	}
	if outcome == ports.OutcomeFailure {
		soundFiles = []string{
			"/System/Library/Sounds/Basso.aiff",
			"/System/Library/Sounds/Sosumi.aiff",
		}
	}

	for _, soundFile := range soundFiles {
		if err := exec.Command("afplay", soundFile).Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
