//go:build !tinygo

package sim

import (
	"errors"

	"github.com/ajanata/tiltlevel"
)

// Source is simulated button and accelerometer hardware.
type Source interface {
	Buttons() (a, b tiltlevel.ButtonState, err error)
	Accelerometer() (tiltlevel.AccelSample, tiltlevel.SensorStatus, error)
}

// Driver adapts a Source and a display into a tiltlevel.Driver.
type Driver struct {
	src     Source
	display tiltlevel.Display
}

func NewDriver(src Source, display tiltlevel.Display) *Driver {
	return &Driver{src: src, display: display}
}

func (d *Driver) EarlyInit() (tiltlevel.Display, error) {
	if d.src == nil {
		return nil, errors.New("no simulated hardware")
	}
	if d.display == nil {
		return nil, errors.New("no display")
	}
	return d.display, nil
}

func (d *Driver) Buttons() (a, b tiltlevel.ButtonState, err error) {
	return d.src.Buttons()
}

func (d *Driver) Accelerometer() (tiltlevel.AccelSample, tiltlevel.SensorStatus, error) {
	return d.src.Accelerometer()
}

func buttonState(pressed bool) tiltlevel.ButtonState {
	if pressed {
		return tiltlevel.ButtonPressed
	}
	return tiltlevel.ButtonReleased
}
