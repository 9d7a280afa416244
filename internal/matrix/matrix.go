// Package matrix presents frames on any tinygo Displayer: the micro:bit LED matrix itself, or a larger pixel display
// where every cell becomes a square block.
package matrix

import (
	"errors"
	"image/color"
	"time"

	"tinygo.org/x/drivers"

	"github.com/ajanata/tiltlevel"
)

var (
	On  = color.RGBA{R: 0xFF, A: 0xFF}
	Off = color.RGBA{A: 0xFF}

	// LEDOn is full brightness on the micro:bit LED matrix driver, which reads alpha as transparency in nine steps
	// (same value as microbitmatrix.BrightnessFull). On would be fully transparent there, i.e. dark.
	LEDOn = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF - 9*(0xFF/9)}
)

// LEDConfig drives the micro:bit's own multiplexed LED matrix.
var LEDConfig = Config{Multiplexed: true, On: LEDOn}

type Config struct {
	// Scale is the edge length in pixels of one cell. Zero means 1.
	Scale int16
	// Mirror flips columns, for boards mounted with the matrix facing away from the user.
	Mirror bool
	// Multiplexed displays only light one row at a time, so Display must be called continuously for the whole hold.
	Multiplexed bool
	// On is the color of a lit cell. The zero value means red.
	On color.RGBA
}

// Display implements tiltlevel.Display on top of a drivers.Displayer.
type Display struct {
	d      drivers.Displayer
	scale  int16
	mirror bool
	mux    bool
	on     color.RGBA

	now   func() time.Time
	sleep func(time.Duration)
}

func New(d drivers.Displayer, cfg Config) (*Display, error) {
	if d == nil {
		return nil, errors.New("must provide displayer")
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.On == (color.RGBA{}) {
		cfg.On = On
	}
	w, h := d.Size()
	if w < tiltlevel.FrameSize*cfg.Scale || h < tiltlevel.FrameSize*cfg.Scale {
		return nil, errors.New("displayer too small for matrix")
	}

	return &Display{
		d:      d,
		scale:  cfg.Scale,
		mirror: cfg.Mirror,
		mux:    cfg.Multiplexed,
		on:     cfg.On,
		now:    time.Now,
		sleep:  time.Sleep,
	}, nil
}

func (m *Display) Size() (x, y int16) {
	return tiltlevel.FrameSize * m.scale, tiltlevel.FrameSize * m.scale
}

// Draw copies the frame into the underlying displayer without flushing it.
func (m *Display) Draw(f *tiltlevel.Frame) {
	for row := uint8(0); row < tiltlevel.FrameSize; row++ {
		for col := uint8(0); col < tiltlevel.FrameSize; col++ {
			c := Off
			if f.At(row, col) {
				c = m.on
			}
			x := int16(col)
			if m.mirror {
				x = tiltlevel.FrameSize - 1 - x
			}
			m.fill(x*m.scale, int16(row)*m.scale, c)
		}
	}
}

func (m *Display) fill(x0, y0 int16, c color.RGBA) {
	for x := x0; x < x0+m.scale; x++ {
		for y := y0; y < y0+m.scale; y++ {
			m.d.SetPixel(x, y, c)
		}
	}
}

// Show draws f and keeps it up for hold.
func (m *Display) Show(f *tiltlevel.Frame, hold time.Duration) error {
	m.Draw(f)

	if !m.mux {
		err := m.d.Display()
		if err != nil {
			return err
		}
		m.sleep(hold)
		return nil
	}

	// at least one full scan even for a zero hold
	deadline := m.now().Add(hold)
	for {
		err := m.d.Display()
		if err != nil {
			return err
		}
		if !m.now().Before(deadline) {
			return nil
		}
	}
}
