// Package raster loads and transforms the bitmap images placed into a
// sketch document as raster insets. The document model stores only an
// inset's anchor and extent; the pixels decoded here stay with the
// rendering collaborator.
package raster

import (
	"fmt"
	"image"
	"math"
	"os"

	// Decoders for the formats the open-image dialog accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Load decodes an image file (PNG, JPEG, GIF or BMP).
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decoding %s: %w", path, err)
	}
	return img, nil
}

// Scale resamples src to w×h with Catmull-Rom interpolation.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// Rotate returns src rotated by angle radians about its center. The
// destination is sized to the rotated bounding box; uncovered corners
// stay transparent.
func Rotate(src image.Image, angle float64) *image.RGBA {
	sb := src.Bounds()
	sw := float64(sb.Dx())
	sh := float64(sb.Dy())

	sin, cos := math.Sincos(angle)
	dw := math.Abs(sw*cos) + math.Abs(sh*sin)
	dh := math.Abs(sw*sin) + math.Abs(sh*cos)

	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(dw)), int(math.Ceil(dh))))

	// Source-to-destination affine map: translate the source center to
	// the origin, rotate, translate to the destination center.
	scx := float64(sb.Min.X) + sw/2
	scy := float64(sb.Min.Y) + sh/2
	m := f64.Aff3{
		cos, -sin, dw/2 - cos*scx + sin*scy,
		sin, cos, dh/2 - sin*scx - cos*scy,
	}
	xdraw.BiLinear.Transform(dst, m, src, sb, xdraw.Over, nil)
	return dst
}
