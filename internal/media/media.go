package media

import (
	"embed"
	"errors"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// Size is the edge length of every pattern, matching the LED matrix.
const Size = 5

//go:embed media/*.bmp
var imgs embed.FS

// LoadImage loads the named embedded pattern.
func LoadImage(name string) (image.Image, error) {
	r, err := imgs.Open("media/" + name + ".bmp")
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fi, err := r.Stat()
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		return nil, errors.New("cannot open directory")
	}

	return Decode(r)
}

// Decode reads a BMP and checks it has the dimensions of the matrix.
func Decode(r io.Reader) (image.Image, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() != Size || b.Dy() != Size {
		return nil, errors.New("invalid image size, want 5x5")
	}

	return img, nil
}

// Lit reports whether a pixel counts as a lit LED.
func Lit(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}

// Cells converts a 5x5 image into matrix cells, indexed [row][col].
func Cells(img image.Image) [Size][Size]bool {
	var cells [Size][Size]bool
	b := img.Bounds()
	for y := 0; y < Size && b.Min.Y+y < b.Max.Y; y++ {
		for x := 0; x < Size && b.Min.X+x < b.Max.X; x++ {
			cells[y][x] = Lit(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return cells
}

// Image renders matrix cells as a grayscale image, one pixel per LED.
func Image(cells [Size][Size]bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Size, Size))
	for y := range cells {
		for x := range cells[y] {
			if cells[y][x] {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}

// Encode writes matrix cells as a BMP, so a frame can be inspected with any image viewer.
func Encode(w io.Writer, cells [Size][Size]bool) error {
	return bmp.Encode(w, Image(cells))
}
