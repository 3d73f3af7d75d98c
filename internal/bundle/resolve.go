package bundle

import "math"

// scaleEpsilon absorbs float rounding when comparing scale distances.
const scaleEpsilon = 1e-9

// ScaleFactor returns the smallest uniform scale that makes from at least
// as large as to on both axes.
func ScaleFactor(from, to Size) float64 {
	return math.Max(
		float64(to.Width)/float64(from.Width),
		float64(to.Height)/float64(from.Height),
	)
}

// Resolve picks the variant of set to use as the rescale source for target.
//
// An exact size match wins outright. Otherwise the variant whose ScaleFactor
// is closest to 1 is chosen; on equal distance a variant that only needs
// downscaling beats one that needs upscaling, and after that the earlier
// variant wins. Resolve never resizes anything.
//
// set must be non-empty and target non-empty; Bundle checks both before
// calling it.
func Resolve(set VariantSet, target Size) Variant {
	return set.variants[ResolveIndex(set, target)]
}

// ResolveIndex is Resolve but returns the position of the chosen variant.
func ResolveIndex(set VariantSet, target Size) int {
	for i, v := range set.variants {
		if v.size == target {
			return i
		}
	}

	best := 0
	bestFactor := ScaleFactor(set.variants[0].size, target)
	for i := 1; i < len(set.variants); i++ {
		f := ScaleFactor(set.variants[i].size, target)
		if closerScale(f, bestFactor) {
			best, bestFactor = i, f
		}
	}
	return best
}

// closerScale reports whether scale factor f should replace the current best.
// Distances within scaleEpsilon count as equal, compared pairwise against the
// running best only, so among several near-equal candidates the result can
// depend on scan order.
func closerScale(f, best float64) bool {
	d, bd := math.Abs(f-1), math.Abs(best-1)
	switch {
	case d < bd-scaleEpsilon:
		return true
	case d > bd+scaleEpsilon:
		return false
	}
	// Same distance: prefer downscaling.
	return f <= 1 && best > 1
}
