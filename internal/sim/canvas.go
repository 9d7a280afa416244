//go:build !tinygo

package sim

import (
	"image"
	"image/color"
	"sync"
)

// Canvas is an in-memory drivers.Displayer. Pixels are drawn into a back buffer and become visible to Image when
// Display is called, the same way a real display only changes on flush.
type Canvas struct {
	mu    sync.Mutex
	back  *image.RGBA
	front *image.RGBA
}

func NewCanvas(w, h int) *Canvas {
	r := image.Rect(0, 0, w, h)
	return &Canvas{back: image.NewRGBA(r), front: image.NewRGBA(r)}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.back.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.back.SetRGBA(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(c.front.Pix, c.back.Pix)
	return nil
}

// Pixels returns a copy of the flushed RGBA pixels.
func (c *Canvas) Pixels() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := make([]byte, len(c.front.Pix))
	copy(p, c.front.Pix)
	return p
}

// At returns a flushed pixel.
func (c *Canvas) At(x, y int) color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front.RGBAAt(x, y)
}
