//go:build !tinygo

package sim

import (
	"context"
	"errors"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ajanata/tiltlevel"
)

const (
	termLogLines = 8
	// TiltStep and FineTiltStep are how far one key press tilts the board, in milli-g.
	TiltStep     = 50
	FineTiltStep = 5
)

var helpText = []string{
	"a/b: buttons  arrows: tilt (shift: fine)",
	"0: level  f: flip  q: quit",
}

// Terminal shows the matrix in a tcell screen and turns key presses into board input. It implements
// drivers.Displayer with one pixel per LED, so it can sit behind a matrix.Display.
type Terminal struct {
	screen tcell.Screen
	board  *Board

	mu    sync.Mutex
	cells [tiltlevel.FrameSize][tiltlevel.FrameSize]bool
	logs  []string
}

func NewTerminal(board *Board) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminalWithScreen(screen, board)
}

func newTerminalWithScreen(screen tcell.Screen, board *Board) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()

	return &Terminal{screen: screen, board: board}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) Size() (x, y int16) {
	return tiltlevel.FrameSize, tiltlevel.FrameSize
}

func (t *Terminal) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= tiltlevel.FrameSize || y >= tiltlevel.FrameSize {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cells[y][x] = c.R != 0 || c.G != 0 || c.B != 0
}

func (t *Terminal) Display() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	lit := tcell.StyleDefault.Foreground(tcell.ColorRed)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := range t.cells {
		for x := range t.cells[y] {
			r, style := '·', dim
			if t.cells[y][x] {
				r, style = '●', lit
			}
			t.screen.SetContent(2+x*2, 1+y, r, nil, style)
		}
	}

	s := t.board.Sample()
	row := 2 + tiltlevel.FrameSize
	t.print(0, row, "x="+strconv.Itoa(int(s.X))+" y="+strconv.Itoa(int(s.Y))+" z="+strconv.Itoa(int(s.Z)), tcell.StyleDefault)
	row++
	for _, line := range helpText {
		t.print(0, row, line, dim)
		row++
	}
	row++
	for _, line := range t.logs {
		t.print(0, row, line, tcell.StyleDefault)
		row++
	}

	t.screen.Show()
	return nil
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Write keeps the last few log lines for display under the matrix.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		t.logs = append(t.logs, line)
	}
	if len(t.logs) > termLogLines {
		t.logs = t.logs[len(t.logs)-termLogLines:]
	}
	return len(p), nil
}

// Run starts run (normally level Init followed by Run) on its own goroutine and feeds keyboard input to the board
// until the user quits or run returns.
func (t *Terminal) Run(ctx context.Context, run func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- run(ctx) }()

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			if t.handle(ev) {
				cancel()
				return
			}
		}
	}()

	err := <-errc
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// handle applies one input event and reports whether the user asked to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		step := int32(TiltStep)
		if ev.Modifiers()&tcell.ModShift != 0 {
			step = FineTiltStep
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			t.board.Tilt(-step, 0)
		case tcell.KeyRight:
			t.board.Tilt(step, 0)
		case tcell.KeyUp:
			t.board.Tilt(0, -step)
		case tcell.KeyDown:
			t.board.Tilt(0, step)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'a':
				t.board.Press(true)
			case 'b':
				t.board.Press(false)
			case 'f':
				t.board.Flip()
			case '0':
				t.board.Level()
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}
