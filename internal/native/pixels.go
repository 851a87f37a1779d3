package native

import (
	"image"

	"github.com/disintegration/imaging"
)

// Frame is a top-down 32-bit BGRA bitmap ready for a device-independent blit
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame converts img to BGRA. Per-pixel alpha is dropped; window opacity is
// applied to the whole layered window instead.
func NewFrame(img image.Image) Frame {
	if img == nil {
		return Frame{}
	}

	src := imaging.Clone(img)
	size := src.Bounds().Size()
	pix := make([]byte, size.X*size.Y*4)

	for y := 0; y < size.Y; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+size.X*4]
		for x := 0; x < size.X; x++ {
			i := x * 4
			o := (y*size.X + x) * 4
			pix[o+0] = row[i+2]
			pix[o+1] = row[i+1]
			pix[o+2] = row[i+0]
			pix[o+3] = 0xff
		}
	}

	return Frame{Width: size.X, Height: size.Y, Pix: pix}
}
