package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBundle is returned by operations that need at least one
	// variant when called on an empty bundle.
	ErrInvalidBundle = errors.New("invalid bitmap bundle")

	// ErrInvalidSize is returned when a requested size has a zero or
	// negative component.
	ErrInvalidSize = errors.New("invalid bitmap size")

	// ErrInvalidRaster reports a raster rejected by Image.Validate during
	// construction.
	ErrInvalidRaster = errors.New("invalid raster")
)

// RasterError identifies the raster that made construction fail. It
// matches ErrInvalidRaster with errors.Is.
type RasterError struct {
	Index int
}

func (e *RasterError) Error() string {
	return fmt.Sprintf("%v: raster %d", ErrInvalidRaster, e.Index)
}

func (e *RasterError) Unwrap() error {
	return ErrInvalidRaster
}
