package sim

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/matrix"
)

func newTestTerminal(t *testing.T) (*Terminal, *Board, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	board := NewBoard()
	term, err := newTerminalWithScreen(screen, board)
	if err != nil {
		t.Fatalf("newTerminalWithScreen: %v", err)
	}
	t.Cleanup(term.Close)
	return term, board, screen
}

func TestTerminalDisplay(t *testing.T) {
	term, _, screen := newTestTerminal(t)

	term.SetPixel(1, 3, color.RGBA{R: 0xFF, A: 0xFF})
	term.SetPixel(9, 9, color.RGBA{R: 0xFF, A: 0xFF}) // ignored
	if _, err := term.Write([]byte("INFO  fine mode\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := term.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}

	r, _, _, _ := screen.GetContent(2+1*2, 1+3)
	if r != '●' {
		t.Fatalf("lit cell rune %q", r)
	}
	r, _, _, _ = screen.GetContent(2, 1)
	if r != '·' {
		t.Fatalf("unlit cell rune %q", r)
	}

	var found bool
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < 40; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			line.WriteRune(r)
		}
		if strings.Contains(line.String(), "fine mode") {
			found = true
		}
	}
	if !found {
		t.Fatal("log line not drawn")
	}
}

func TestTerminalLogLimit(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	for i := 0; i < 20; i++ {
		_, _ = term.Write([]byte("line\n"))
	}
	if len(term.logs) != termLogLines {
		t.Fatalf("kept %d log lines, want %d", len(term.logs), termLogLines)
	}
}

func TestTerminalHandle(t *testing.T) {
	term, board, _ := newTestTerminal(t)

	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift),
		tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
	}
	for _, k := range keys {
		if term.handle(k) {
			t.Fatalf("key %v quit", k.Name())
		}
	}

	s := board.Sample()
	if s.X != TiltStep || s.Y != FineTiltStep || s.Z != gravity {
		t.Fatalf("sample %+v", s)
	}
	if a, _, _ := board.Buttons(); a != tiltlevel.ButtonPressed {
		t.Fatalf("button a = %s", a)
	}

	if !term.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q did not quit")
	}
	if !term.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape did not quit")
	}
}

func TestTerminalRun(t *testing.T) {
	term, board, _ := newTestTerminal(t)

	disp, err := matrix.New(term, matrix.Config{})
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}
	l, err := tiltlevel.New(NewDriver(board, disp), tiltlevel.Options{Hold: time.Millisecond, Logger: NewLogger(term, false)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = term.Run(ctx, func(ctx context.Context) error {
		if err := l.Init(); err != nil {
			return err
		}
		return l.Run(ctx)
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run: %v, want deadline exceeded", err)
	}
	// the flat board lights the centre
	if f := l.Frame(); f.Lit() != 1 || !f.At(2, 2) {
		t.Fatalf("frame:\n%s", f.String())
	}
}
