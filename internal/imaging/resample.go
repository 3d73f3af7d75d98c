package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ResampleFunc returns a copy of src scaled to exactly width x height.
//
// A ResampleFunc converts directly to bundle.Scaler, which is how the server
// hands a filter to the bundles it builds.
type ResampleFunc func(src image.Image, width, height int) image.Image

// DefaultFilter is the filter used when none is configured.
const DefaultFilter = "lanczos"

// resamplers maps filter names to implementations. Unprefixed names use
// disintegration/imaging, "bild-" names use bild/transform and "xdraw-"
// names use golang.org/x/image/draw.
var resamplers = map[string]ResampleFunc{
	"lanczos":    resizeWith(imaging.Lanczos),
	"catmullrom": resizeWith(imaging.CatmullRom),
	"mitchell":   resizeWith(imaging.MitchellNetravali),
	"linear":     resizeWith(imaging.Linear),
	"box":        resizeWith(imaging.Box),
	"nearest":    resizeWith(imaging.NearestNeighbor),

	"bild-lanczos":  bildWith(transform.Lanczos),
	"bild-linear":   bildWith(transform.Linear),
	"bild-mitchell": bildWith(transform.MitchellNetravali),
	"bild-nearest":  bildWith(transform.NearestNeighbor),

	"xdraw-catmullrom": scaleWith(draw.CatmullRom),
	"xdraw-bilinear":   scaleWith(draw.BiLinear),
	"xdraw-approx":     scaleWith(draw.ApproxBiLinear),
	"xdraw-nearest":    scaleWith(draw.NearestNeighbor),
}

// Resampler returns the resample function registered under name. An empty
// name selects DefaultFilter.
func Resampler(name string) (ResampleFunc, error) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resample filter: %s", name)
	}
	return f, nil
}

// FilterNames returns all registered filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resizeWith(filter imaging.ResampleFilter) ResampleFunc {
	return func(src image.Image, width, height int) image.Image {
		return imaging.Resize(src, width, height, filter)
	}
}

func bildWith(filter transform.ResampleFilter) ResampleFunc {
	return func(src image.Image, width, height int) image.Image {
		return transform.Resize(src, width, height, filter)
	}
}

func scaleWith(s draw.Scaler) ResampleFunc {
	return func(src image.Image, width, height int) image.Image {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst
	}
}
