package animation

import (
	"image"

	"github.com/ajanata/tiltlevel/internal/media"
)

// Canvas is the cell grid an animation draws into.
type Canvas interface {
	Clear()
	Set(row, col uint8)
}

type Animation interface {
	// Activate is called when the animation is being started on the matrix.
	// An animation may be re-used so this should be able to be called more than once.
	Activate(Canvas)
	// DrawFrame draws the next frame of the animation.
	// The current frame number is provided to allow animations to be keyed off every-x-frames without having to keep
	// track of that themselves.
	// Returns whether the animation should continue after this frame has been shown.
	DrawFrame(c Canvas, tick uint32) bool
}

// DrawImage lights the cells for the lit pixels of img, shifted by the given offsets.
// If wrap is true, off-matrix coordinates will wrap around to the other side.
// Otherwise, off-matrix coordinates will be clipped.
func DrawImage(c Canvas, offX, offY int, img image.Image, wrap bool) {
	b := img.Bounds()
	for x := 0; x < b.Dx(); x++ {
		xx := x + offX
		if xx < 0 || xx >= media.Size {
			if !wrap {
				continue
			}
			xx = ((xx % media.Size) + media.Size) % media.Size
		}
		for y := 0; y < b.Dy(); y++ {
			yy := y + offY
			if yy < 0 || yy >= media.Size {
				if !wrap {
					continue
				}
				yy = ((yy % media.Size) + media.Size) % media.Size
			}
			if media.Lit(img.At(b.Min.X+x, b.Min.Y+y)) {
				c.Set(uint8(yy), uint8(xx))
			}
		}
	}
}
