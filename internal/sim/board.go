//go:build !tinygo

package sim

import (
	"sync"
	"time"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/odr"
)

const (
	// SampleRate matches the accelerometer output data rate used on the micro:bit.
	SampleRate = 10

	gravity  = 1000
	maxRange = 2 * gravity
)

// Board is interactively driven hardware: frontends tilt it, flip it and press its buttons from their input loop
// while the level reads it from its own goroutine.
type Board struct {
	mu      sync.Mutex
	x, y    int32
	flipped bool
	pressA  bool
	pressB  bool
	gate    *odr.Gate
}

func NewBoard() *Board {
	return newBoardWithClock(time.Now)
}

func newBoardWithClock(now func() time.Time) *Board {
	return &Board{gate: odr.NewWithClock(SampleRate, now)}
}

// Tilt moves the lateral readings by the given milli-g, clamped to the ±2g range.
func (b *Board) Tilt(dx, dy int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.x = clamp(b.x + dx)
	b.y = clamp(b.y + dy)
}

// Level puts the board flat again.
func (b *Board) Level() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.x, b.y = 0, 0
}

// Flip turns the board over.
func (b *Board) Flip() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flipped = !b.flipped
}

// Press registers a momentary press of button A or B, seen by the next button read only.
func (b *Board) Press(a bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a {
		b.pressA = true
	} else {
		b.pressB = true
	}
}

// Sample returns the current simulated reading without consuming it.
func (b *Board) Sample() tiltlevel.AccelSample {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sample()
}

func (b *Board) sample() tiltlevel.AccelSample {
	// the matrix faces the sky when the board is right side up, which reads as negative z
	z := int32(-gravity)
	if b.flipped {
		z = gravity
	}
	return tiltlevel.AccelSample{X: b.x, Y: b.y, Z: z}
}

func (b *Board) Buttons() (a, bb tiltlevel.ButtonState, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, bb = buttonState(b.pressA), buttonState(b.pressB)
	b.pressA, b.pressB = false, false
	return a, bb, nil
}

func (b *Board) Accelerometer() (tiltlevel.AccelSample, tiltlevel.SensorStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gate.Ready() {
		return tiltlevel.AccelSample{}, tiltlevel.SensorStatusBusy, nil
	}
	return b.sample(), tiltlevel.SensorStatusAvailable, nil
}

func clamp(v int32) int32 {
	if v > maxRange {
		return maxRange
	}
	if v < -maxRange {
		return -maxRange
	}
	return v
}
