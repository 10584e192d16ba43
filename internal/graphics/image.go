package graphics

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeRGBA decodes an image and converts it to tightly packed RGBA8 with
// its origin at (0, 0). With flipV the rows are reversed, which puts the
// first row at the bottom as OpenGL's texture coordinates expect.
func DecodeRGBA(r io.Reader, flipV bool) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var rgba *image.RGBA
	if flipV {
		rgba = transform.FlipV(img)
	} else {
		bounds := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	if rgba.Stride != 4*rgba.Rect.Dx() || rgba.Rect.Min != (image.Point{}) {
		packed := image.NewRGBA(image.Rect(0, 0, rgba.Rect.Dx(), rgba.Rect.Dy()))
		draw.Copy(packed, image.Point{}, rgba, rgba.Rect, draw.Src, nil)
		rgba = packed
	}
	return rgba, nil
}
