package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// differenceThreshold is the CIE Lab distance above which two pixels count
// as different. go-colorful scales L to 0-1, so 0.05 is about 5 ΔE.
const differenceThreshold = 0.05

// CompareResult describes how closely two equally sized bitmaps match.
type CompareResult struct {
	SimilarityScore float64 `json:"similarity_score"` // fraction of matching pixels
	PixelsDifferent int     `json:"pixels_different"`
	TotalPixels     int     `json:"total_pixels"`
	MeanDistance    float64 `json:"mean_distance"` // mean Lab distance
	MaxDistance     float64 `json:"max_distance"`
}

// CompareImages compares a and b pixel by pixel in CIE Lab space. Both
// images must have the same dimensions.
func CompareImages(a, b image.Image) (*CompareResult, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, fmt.Errorf("cannot compare %dx%d with %dx%d", ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	total := ab.Dx() * ab.Dy()
	if total == 0 {
		return nil, fmt.Errorf("cannot compare empty images")
	}

	different := 0
	var sum, worst float64
	for dy := 0; dy < ab.Dy(); dy++ {
		for dx := 0; dx < ab.Dx(); dx++ {
			ca := toColorful(a, ab.Min.X+dx, ab.Min.Y+dy)
			cb := toColorful(b, bb.Min.X+dx, bb.Min.Y+dy)
			d := ca.DistanceLab(cb)
			sum += d
			if d > worst {
				worst = d
			}
			if d > differenceThreshold {
				different++
			}
		}
	}

	return &CompareResult{
		SimilarityScore: math.Round((1-float64(different)/float64(total))*1000) / 1000,
		PixelsDifferent: different,
		TotalPixels:     total,
		MeanDistance:    round3(sum / float64(total)),
		MaxDistance:     round3(worst),
	}, nil
}

// toColorful reads the pixel at (x, y), ignoring alpha.
func toColorful(img image.Image, x, y int) colorful.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return colorful.Color{
		R: float64(r>>8) / 255,
		G: float64(g>>8) / 255,
		B: float64(b>>8) / 255,
	}
}
