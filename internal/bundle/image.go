package bundle

import (
	"image"

	"golang.org/x/image/draw"
)

// Image is the raster capability a bundle depends on. Bundles never decode
// or filter pixels themselves.
type Image interface {
	// Resize returns a new raster of exactly target size made from src.
	Resize(src image.Image, target Size) image.Image

	// Validate reports whether img is usable as a variant.
	Validate(img image.Image) bool

	// Size returns the intrinsic size of img.
	Size(img image.Image) Size
}

// Scaler adapts a plain resample function into an Image. Validate and Size
// are derived from the raster bounds.
type Scaler func(src image.Image, width, height int) image.Image

// Resize implements Image.
func (f Scaler) Resize(src image.Image, target Size) image.Image {
	return f(src, target.Width, target.Height)
}

// Validate implements Image. A nil raster or one with empty bounds is invalid.
func (Scaler) Validate(img image.Image) bool {
	if img == nil {
		return false
	}
	return !img.Bounds().Empty()
}

// Size implements Image.
func (Scaler) Size(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// DefaultImage is used by bundles built without WithImage. It resamples with
// a Catmull-Rom kernel.
var DefaultImage Image = Scaler(catmullRom)

func catmullRom(src image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
