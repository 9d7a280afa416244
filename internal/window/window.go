//go:build !tinygo && cgo

// Package window shows the simulated matrix and status screen in an ebiten desktop window.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/sim"
)

const (
	// WindowCell is the pixel size of one LED in the window.
	WindowCell   = 24
	statusWidth  = 128
	statusHeight = 64
)

// Window shows the matrix and the status screen in a desktop window.
type Window struct {
	board  *sim.Board
	matrix *sim.Canvas
	status *sim.Canvas

	matrixImg *ebiten.Image
	statusImg *ebiten.Image

	errc chan error
}

func New(board *sim.Board) *Window {
	return &Window{
		board:  board,
		matrix: sim.NewCanvas(tiltlevel.FrameSize*WindowCell, tiltlevel.FrameSize*WindowCell),
		status: sim.NewCanvas(statusWidth, statusHeight),
	}
}

// Matrix is the canvas the LED matrix is drawn on; wrap it in a matrix.Display scaled by WindowCell.
func (w *Window) Matrix() *sim.Canvas { return w.matrix }

// Status is a 128x64 canvas for the text status screen.
func (w *Window) Status() *sim.Canvas { return w.status }

// Run starts run on its own goroutine and blocks in the ebiten loop until the window closes or run fails.
func (w *Window) Run(ctx context.Context, run func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.errc = make(chan error, 1)
	go func() { w.errc <- run(ctx) }()

	ebiten.SetWindowTitle("tiltlevel")
	ebiten.SetWindowSize(statusWidth*3, (tiltlevel.FrameSize*WindowCell+statusHeight)*3)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (w *Window) Update() error {
	select {
	case err := <-w.errc:
		if err == nil {
			return ebiten.Termination
		}
		return err
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		w.board.Press(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		w.board.Press(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		w.board.Flip()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		w.board.Level()
	}

	step := int32(sim.TiltStep)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = sim.FineTiltStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		w.board.Tilt(-step, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		w.board.Tilt(step, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		w.board.Tilt(0, -step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		w.board.Tilt(0, step)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.matrixImg == nil {
		mw, mh := w.matrix.Size()
		w.matrixImg = ebiten.NewImage(int(mw), int(mh))
		sw, sh := w.status.Size()
		w.statusImg = ebiten.NewImage(int(sw), int(sh))
	}

	w.matrixImg.WritePixels(w.matrix.Pixels())
	w.statusImg.WritePixels(w.status.Pixels())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(statusWidth-tiltlevel.FrameSize*WindowCell)/2, 0)
	screen.DrawImage(w.matrixImg, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, tiltlevel.FrameSize*WindowCell)
	screen.DrawImage(w.statusImg, op)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return statusWidth, tiltlevel.FrameSize*WindowCell + statusHeight
}
