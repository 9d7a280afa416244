package matrix

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/ajanata/tiltlevel"
)

type fakeDisplayer struct {
	w, h     int16
	pix      map[[2]int16]color.RGBA
	displays int
	err      error
}

func newFake(w, h int16) *fakeDisplayer {
	return &fakeDisplayer{w: w, h: h, pix: map[[2]int16]color.RGBA{}}
}

func (d *fakeDisplayer) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) { d.pix[[2]int16{x, y}] = c }

func (d *fakeDisplayer) Display() error {
	d.displays++
	return d.err
}

func (d *fakeDisplayer) lit(x, y int16) bool {
	c := d.pix[[2]int16{x, y}]
	return c.R != 0 || c.G != 0 || c.B != 0
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		d       *fakeDisplayer
		cfg     Config
		wantErr bool
	}{
		{"exact 5x5", newFake(5, 5), Config{}, false},
		{"too small", newFake(4, 5), Config{}, true},
		{"scaled fits", newFake(128, 64), Config{Scale: 12}, false},
		{"scaled too big", newFake(128, 64), Config{Scale: 13}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.d, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New: %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := New(nil, Config{}); err == nil {
		t.Error("expected error for nil displayer")
	}
}

func TestShowScaledMirrored(t *testing.T) {
	d := newFake(10, 10)
	m, err := New(d, Config{Scale: 2, Mirror: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var slept time.Duration
	m.sleep = func(d time.Duration) { slept += d }

	var f tiltlevel.Frame
	f.Set(1, 0)
	if err := m.Show(&f, 200*time.Millisecond); err != nil {
		t.Fatalf("Show: %v", err)
	}

	// column 0 mirrors to column 4, which spans pixels 8..9; row 1 spans 2..3
	for x := int16(0); x < 10; x++ {
		for y := int16(0); y < 10; y++ {
			want := x >= 8 && y >= 2 && y <= 3
			if d.lit(x, y) != want {
				t.Fatalf("pixel (%d, %d) lit = %v, want %v", x, y, d.lit(x, y), want)
			}
		}
	}
	if d.displays != 1 || slept != 200*time.Millisecond {
		t.Fatalf("displays %d slept %v", d.displays, slept)
	}
	if w, h := m.Size(); w != 10 || h != 10 {
		t.Fatalf("Size() = %d, %d", w, h)
	}
}

func TestShowMultiplexed(t *testing.T) {
	d := newFake(5, 5)
	m, err := New(d, Config{Multiplexed: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	now := time.Unix(0, 0)
	m.now = func() time.Time {
		now = now.Add(10 * time.Millisecond)
		return now
	}

	var f tiltlevel.Frame
	if err := m.Show(&f, 50*time.Millisecond); err != nil {
		t.Fatalf("Show: %v", err)
	}
	// deadline taken at 10ms, then every scan advances the clock by 10ms until 60ms
	if d.displays != 5 {
		t.Fatalf("displays = %d, want 5", d.displays)
	}

	d.displays = 0
	if err := m.Show(&f, 0); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if d.displays != 1 {
		t.Fatalf("zero hold displays = %d, want 1", d.displays)
	}

	d.err = errors.New("bus")
	if err := m.Show(&f, time.Second); err == nil {
		t.Fatal("expected display error")
	}
}

// ledMatrix stores pixels the way the micro:bit LED matrix driver does: black is off, otherwise alpha is
// transparency, 0 (opaque) being brightness 9 and 252 and up being 0.
type ledMatrix struct {
	levels [5][5]int8
}

func ledBrightness(c color.RGBA) int8 {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return 0
	}
	return 9 - int8(c.A/28)
}

func (d *ledMatrix) Size() (x, y int16) { return 5, 5 }

func (d *ledMatrix) SetPixel(x, y int16, c color.RGBA) { d.levels[y][x] = ledBrightness(c) }

func (d *ledMatrix) Display() error { return nil }

func TestLEDBrightness(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want int8
	}{
		{"led on", LEDOn, 9},
		{"off", Off, 0},
		{"pixel display red", On, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ledBrightness(tt.c); got != tt.want {
				t.Errorf("brightness(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}

	d := &ledMatrix{}
	m, err := New(d, LEDConfig)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var f tiltlevel.Frame
	f.Set(3, 1)
	if err := m.Show(&f, 0); err != nil {
		t.Fatalf("Show: %v", err)
	}
	for y := range d.levels {
		for x := range d.levels[y] {
			want := int8(0)
			if y == 3 && x == 1 {
				want = 9
			}
			if d.levels[y][x] != want {
				t.Fatalf("LED (%d, %d) brightness %d, want %d", x, y, d.levels[y][x], want)
			}
		}
	}
}
