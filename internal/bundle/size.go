package bundle

import (
	"fmt"
	"math"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Scale multiplies both dimensions by factor, rounding to the nearest pixel.
// Results are clamped to the int32 range; a NaN product becomes zero.
func (s Size) Scale(factor float64) Size {
	return Size{
		Width:  scaleDim(s.Width, factor),
		Height: scaleDim(s.Height, factor),
	}
}

func scaleDim(n int, factor float64) int {
	v := math.Round(float64(n) * factor)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
