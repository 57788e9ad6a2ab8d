//go:build !darwin && !linux

package sound

import "github.com/renato0307/trainmerge/internal/ports"

// playForOutcome falls back to terminal bell on other platforms
func playForOutcome(ports.Outcome) error {
	return terminalBell()
}
