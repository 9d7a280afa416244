package static

import (
	"image"

	"github.com/ajanata/tiltlevel/internal/animation"
	"github.com/ajanata/tiltlevel/internal/media"
)

// Anim shows a single embedded pattern for one frame.
type Anim struct {
	img image.Image
}

func New(file string) (*Anim, error) {
	img, err := media.LoadImage(file)
	if err != nil {
		return nil, err
	}

	return &Anim{
		img: img,
	}, nil
}

func (a *Anim) Activate(c animation.Canvas) {
	c.Clear()
}

func (a *Anim) DrawFrame(c animation.Canvas, _ uint32) bool {
	animation.DrawImage(c, 0, 0, a.img, false)
	return false
}
