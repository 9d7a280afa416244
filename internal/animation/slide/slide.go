package slide

import (
	"image"

	"github.com/ajanata/tiltlevel/internal/animation"
	"github.com/ajanata/tiltlevel/internal/media"
)

// Anim slides an embedded pattern across the matrix one column per frame, wrapping around, and stops after a full
// pass.
type Anim struct {
	img image.Image
	x   int
}

func New(file string) (animation.Animation, error) {
	img, err := media.LoadImage(file)
	if err != nil {
		return nil, err
	}

	return &Anim{
		img: img,
	}, nil
}

func (a *Anim) Activate(_ animation.Canvas) {
	a.x = 0
}

func (a *Anim) DrawFrame(c animation.Canvas, _ uint32) bool {
	c.Clear()
	animation.DrawImage(c, a.x, 0, a.img, true)
	a.x++
	return a.x < media.Size
}
