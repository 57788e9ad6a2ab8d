//go:build linux

package sound

import (
	"os/exec"

	"github.com/renato0307/trainmerge/internal/ports"
)

type soundCommand struct {
	args []string
	cmd  string
}

// playForOutcome plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForOutcome(outcome ports.Outcome) error {
	sounds := []soundCommand{
		{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
	}
	if outcome == ports.OutcomeFailure {
		sounds = []soundCommand{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/dialog-error.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/dialog-error.wav"}},
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		}
	}

	for _, s := range sounds {
		if err := exec.Command(s.cmd, s.args...).Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
