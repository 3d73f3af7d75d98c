package bundle

import "image"

// Variant is one raster of a bundle together with its intrinsic size.
type Variant struct {
	Image image.Image
	size  Size
}

// Size returns the size of the variant's raster.
func (v Variant) Size() Size {
	return v.size
}

// VariantSet is an immutable, ordered list of variants. The zero value is the
// empty set, which marks an invalid bundle.
type VariantSet struct {
	variants []Variant
}

// NewVariantSet builds a set from rasters in the given order. If rasters is
// empty, or any raster fails capability.Validate, the empty set is returned:
// construction never yields a partial set.
func NewVariantSet(rasters []image.Image, capability Image) VariantSet {
	set, _ := NewVariantSetChecked(rasters, capability)
	return set
}

// NewVariantSetChecked is NewVariantSet but also reports, as a
// *RasterError, which raster made construction fail. An empty input is not
// an error.
func NewVariantSetChecked(rasters []image.Image, capability Image) (VariantSet, error) {
	if len(rasters) == 0 {
		return VariantSet{}, nil
	}
	variants := make([]Variant, 0, len(rasters))
	for i, img := range rasters {
		if !capability.Validate(img) {
			return VariantSet{}, &RasterError{Index: i}
		}
		variants = append(variants, Variant{Image: img, size: capability.Size(img)})
	}
	return VariantSet{variants: variants}, nil
}

// SingleVariant builds a one-element set, or the empty set if img is invalid.
func SingleVariant(img image.Image, capability Image) VariantSet {
	return NewVariantSet([]image.Image{img}, capability)
}

// Len returns the number of variants.
func (s VariantSet) Len() int {
	return len(s.variants)
}

// At returns the i'th variant in insertion order.
func (s VariantSet) At(i int) Variant {
	return s.variants[i]
}

// Sizes returns the variant sizes in insertion order.
func (s VariantSet) Sizes() []Size {
	sizes := make([]Size, len(s.variants))
	for i, v := range s.variants {
		sizes[i] = v.size
	}
	return sizes
}

// Exact returns the first variant whose size equals target.
func (s VariantSet) Exact(target Size) (Variant, bool) {
	for _, v := range s.variants {
		if v.size == target {
			return v, true
		}
	}
	return Variant{}, false
}

// DefaultSize returns the size of the smallest variant by area, the first
// one in insertion order on ties. It returns the zero Size for an empty set.
func (s VariantSet) DefaultSize() Size {
	if len(s.variants) == 0 {
		return Size{}
	}
	best := s.variants[0].size
	for _, v := range s.variants[1:] {
		if v.size.Area() < best.Area() {
			best = v.size
		}
	}
	return best
}
