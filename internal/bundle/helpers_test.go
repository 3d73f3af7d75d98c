package bundle

import (
	"image"
	"image/color"
	"sync"
)

// countingImage wraps a Scaler and records every Resize call.
type countingImage struct {
	Scaler

	mu      sync.Mutex
	resizes []Size
}

func newCountingImage() *countingImage {
	return &countingImage{Scaler: Scaler(fill)}
}

func (c *countingImage) Resize(src image.Image, target Size) image.Image {
	c.mu.Lock()
	c.resizes = append(c.resizes, target)
	c.mu.Unlock()
	return c.Scaler.Resize(src, target)
}

func (c *countingImage) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.resizes)
}

// fill is a cheap resampler: it paints the source's top-left colour.
func fill(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	c := src.At(b.Min.X, b.Min.Y)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Set(x, y, c)
		}
	}
	return dst
}

func newRaster(width, height int) image.Image {
	return newColorRaster(width, height, color.RGBA{200, 40, 40, 255})
}

func newColorRaster(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func squares(sides ...int) []image.Image {
	imgs := make([]image.Image, len(sides))
	for i, s := range sides {
		imgs[i] = newRaster(s, s)
	}
	return imgs
}
