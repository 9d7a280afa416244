//go:build !tinygo

package sim

import (
	"errors"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/config"
)

// ErrInjected is returned by scripted steps marked as faulty.
var ErrInjected = errors.New("injected fault")

// Script replays configured steps, one per tick. Once the steps run out, the buttons read released and the
// accelerometer never has a new sample.
type Script struct {
	steps []config.Step
	pos   int
	cur   config.Step
}

func NewScript(steps []config.Step) *Script {
	return &Script{steps: steps}
}

// Len is the number of scripted steps.
func (s *Script) Len() int { return len(s.steps) }

// Done reports whether every step has been consumed.
func (s *Script) Done() bool { return s.pos >= len(s.steps) }

// Buttons advances the script; it is the first read of every tick.
func (s *Script) Buttons() (a, b tiltlevel.ButtonState, err error) {
	if s.Done() {
		notReady := false
		s.cur = config.Step{Ready: &notReady}
	} else {
		s.cur = s.steps[s.pos]
		s.pos++
	}

	if s.cur.Fault {
		return tiltlevel.ButtonUnknown, tiltlevel.ButtonUnknown, ErrInjected
	}
	return buttonState(s.cur.A), buttonState(s.cur.B), nil
}

func (s *Script) Accelerometer() (tiltlevel.AccelSample, tiltlevel.SensorStatus, error) {
	if s.cur.Fault {
		return tiltlevel.AccelSample{}, tiltlevel.SensorStatusUnavailable, ErrInjected
	}
	if !s.cur.IsReady() {
		return tiltlevel.AccelSample{}, tiltlevel.SensorStatusBusy, nil
	}
	return tiltlevel.AccelSample{X: s.cur.X, Y: s.cur.Y, Z: s.cur.Z}, tiltlevel.SensorStatusAvailable, nil
}
