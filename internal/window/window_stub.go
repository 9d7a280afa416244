//go:build !tinygo && !cgo

package window

import (
	"context"
	"errors"

	"github.com/ajanata/tiltlevel/internal/sim"
)

const WindowCell = 24

// Window is unavailable without cgo; Run always fails.
type Window struct {
	matrix *sim.Canvas
	status *sim.Canvas
}

func New(_ *sim.Board) *Window {
	return &Window{matrix: sim.NewCanvas(5*WindowCell, 5*WindowCell), status: sim.NewCanvas(128, 64)}
}

func (w *Window) Matrix() *sim.Canvas { return w.matrix }

func (w *Window) Status() *sim.Canvas { return w.status }

func (w *Window) Run(_ context.Context, _ func(context.Context) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
