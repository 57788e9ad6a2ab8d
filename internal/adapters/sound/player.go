package sound

import (
	"fmt"
	"os"

	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// Player implements ports.Notifier with system sounds
type Player struct{}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// Notify plays the sound of outcome, falling back to the terminal bell.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) Notify(outcome ports.Outcome) error {
	logging.Logger.Debug("Playing notification sound", "outcome", outcome)
	return playForOutcome(outcome)
}

// terminalBell writes the bell to stderr so stdout stays clean for json output
func terminalBell() error {
	_, err := fmt.Fprint(os.Stderr, "\a")
	return err
}
