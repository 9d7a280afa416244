//go:build !tinygo

package sim

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/media"
)

// Recorder is a display that keeps the last presented frame instead of lighting anything.
type Recorder struct {
	mu    sync.Mutex
	last  tiltlevel.Frame
	shows int
	wait  bool
}

// NewRecorder returns a recorder. If wait is set, Show blocks for the hold time like real hardware.
func NewRecorder(wait bool) *Recorder {
	return &Recorder{wait: wait}
}

func (r *Recorder) Show(f *tiltlevel.Frame, hold time.Duration) error {
	r.mu.Lock()
	r.last = *f
	r.shows++
	r.mu.Unlock()

	if r.wait {
		time.Sleep(hold)
	}
	return nil
}

// Last returns the most recently presented frame.
func (r *Recorder) Last() tiltlevel.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Shows counts presented frames.
func (r *Recorder) Shows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shows
}

// WriteSnapshot saves a frame as a 5x5 BMP.
func WriteSnapshot(path string, f tiltlevel.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	err = media.Encode(file, [media.Size][media.Size]bool(f))
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a frame written by WriteSnapshot.
func ReadSnapshot(path string) (tiltlevel.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return tiltlevel.Frame{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()

	img, err := media.Decode(file)
	if err != nil {
		return tiltlevel.Frame{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return tiltlevel.Frame(media.Cells(img)), nil
}
