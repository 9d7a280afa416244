package tiltlevel

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/ajanata/textbuf"
)

type pixelDisplay struct {
	w, h     int16
	pix      map[[2]int16]color.RGBA
	displays int
}

func newPixelDisplay(w, h int16) *pixelDisplay {
	return &pixelDisplay{w: w, h: h, pix: map[[2]int16]color.RGBA{}}
}

func (d *pixelDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *pixelDisplay) SetPixel(x, y int16, c color.RGBA) { d.pix[[2]int16{x, y}] = c }

func (d *pixelDisplay) Display() error {
	d.displays++
	return nil
}

// render draws lines onto a fresh text buffer for comparison. The first line is inverse video, like the status
// header; no lines gives a cleared screen.
func render(t *testing.T, w, h int16, lines ...string) *pixelDisplay {
	t.Helper()
	d := newPixelDisplay(w, h)
	buf, err := textbuf.New(d, textbuf.FontSize6x8)
	if err != nil {
		t.Fatalf("textbuf.New: %v", err)
	}
	for i, line := range lines {
		if i == 0 {
			err = buf.SetLineInverse(0, line)
		} else {
			err = buf.SetLine(int16(i), line)
		}
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
	}
	return d
}

func samePixels(t *testing.T, got, want *pixelDisplay) {
	t.Helper()
	if len(got.pix) != len(want.pix) {
		t.Fatalf("drew %d pixels, want %d", len(got.pix), len(want.pix))
	}
	for p, c := range want.pix {
		if got.pix[p] != c {
			t.Fatalf("pixel %v = %v, want %v", p, got.pix[p], c)
		}
	}
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name   string
		tick   Tick
		rate   uint32
		header string
		sample string
		cell   string
	}{
		{
			name:   "render",
			tick:   Tick{Seq: 7, Mode: ModeCoarse, Sample: AccelSample{X: 300, Y: -20, Z: -990}, Action: ActionRender, Row: 2, Col: 1},
			rate:   5,
			header: "coarse 5Hz #7",
			sample: "x300 y-20 z-990",
			cell:   "cell 2,1",
		},
		{
			name:   "blank",
			tick:   Tick{Seq: 12, Mode: ModeFine, Sample: AccelSample{Z: 1000}, Action: ActionBlank},
			rate:   4,
			header: "fine 4Hz #12",
			sample: "x0 y0 z1000",
			cell:   "blank",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusHeader(tt.tick, tt.rate); got != tt.header {
				t.Errorf("header = %q, want %q", got, tt.header)
			}
			if got := statusSample(tt.tick.Sample); got != tt.sample {
				t.Errorf("sample = %q, want %q", got, tt.sample)
			}
			if got := statusCell(tt.tick); got != tt.cell {
				t.Errorf("cell = %q, want %q", got, tt.cell)
			}
		})
	}
}

func TestStatusScreen(t *testing.T) {
	status := newPixelDisplay(128, 64)
	disp := &fakeDisplay{}
	l, err := New(&fakeDriver{display: disp, steps: []step{sample(300, 0, -1000), {status: SensorStatusBusy}}}, Options{
		Logger: &testLogger{},
		Status: status,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := time.Unix(1000, 0)
	l.now = func() time.Time { return start }

	if err := l.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	samePixels(t, status, render(t, 128, 64))

	if _, err := l.RunTick(); err != nil {
		t.Fatalf("RunTick: %v", err)
	}
	samePixels(t, status, render(t, 128, 64, "coarse 0Hz #1", "x300 y0 z-1000", "cell 2,1"))

	// stale ticks leave the status screen alone
	before := status.displays
	if _, err := l.RunTick(); err != nil {
		t.Fatalf("RunTick: %v", err)
	}
	if status.displays != before {
		t.Fatal("stale tick refreshed the status display")
	}
}

func TestStatusBootLines(t *testing.T) {
	status := newPixelDisplay(128, 64)
	l, err := New(&fakeDriver{display: &fakeDisplay{}, initErr: errors.New("no i2c")}, Options{Logger: &testLogger{}, Status: status})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Init(); err == nil {
		t.Fatal("expected init error")
	}
	samePixels(t, status, render(t, 128, 64, "TILTLEVEL BOOTING", "init failed"))
}

func TestStatusTooSmall(t *testing.T) {
	status := newPixelDisplay(30, 8)
	l, err := New(&fakeDriver{display: &fakeDisplay{}}, Options{Logger: &testLogger{}, Status: status})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Init(); err == nil {
		t.Fatal("expected error for tiny status display")
	}
}
