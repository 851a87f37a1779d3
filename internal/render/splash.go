package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/webp" // WebP format support
)

const (
	// SplashScale is the splash size relative to the source image at 96 DPI
	SplashScale = 0.35

	placeholderWidth  = 800
	placeholderHeight = 600
)

// Splash decodes a splash asset and resizes it to scale times its natural size.
// Resampling is bicubic (Catmull-Rom); each dimension is at least 1px.
func Splash(data []byte, scale float64) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale: %v", scale)
	}

	width := max(1, int(float64(bounds.Dx())*scale))
	height := max(1, int(float64(bounds.Dy())*scale))

	return imaging.Resize(img, width, height, imaging.CatmullRom), nil
}

// Placeholder returns the plain black frame shown when no splash asset is usable
func Placeholder() image.Image {
	return imaging.New(placeholderWidth, placeholderHeight, color.Black)
}
