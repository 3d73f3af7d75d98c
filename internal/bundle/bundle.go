package bundle

import (
	"fmt"
	"image"
)

// Bundle is a bitmap bundle. It is a value type: copies share the same
// variants and rescale cache. The zero Bundle is empty.
type Bundle struct {
	s *state
}

type state struct {
	variants VariantSet
	cache    *RescaleCache
	img      Image
}

// Option configures bundle construction.
type Option func(*options)

type options struct {
	img Image
}

// WithImage sets the raster capability used to validate, measure and
// resize bitmaps. The default is DefaultImage.
func WithImage(img Image) Option {
	return func(o *options) {
		o.img = img
	}
}

func buildOptions(opts []Option) options {
	o := options{img: DefaultImage}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newBundle(set VariantSet, img Image) Bundle {
	if set.Len() == 0 {
		return Bundle{}
	}
	return Bundle{s: &state{
		variants: set,
		cache:    NewRescaleCache(),
		img:      img,
	}}
}

// FromBitmaps creates a bundle from bitmaps in order. An empty slice, or a
// slice containing any invalid bitmap, yields the empty bundle.
func FromBitmaps(bitmaps []image.Image, opts ...Option) Bundle {
	o := buildOptions(opts)
	return newBundle(NewVariantSet(bitmaps, o.img), o.img)
}

// FromBitmapsChecked is FromBitmaps but returns an error wrapping
// ErrInvalidRaster naming the first rejected bitmap.
func FromBitmapsChecked(bitmaps []image.Image, opts ...Option) (Bundle, error) {
	o := buildOptions(opts)
	set, err := NewVariantSetChecked(bitmaps, o.img)
	if err != nil {
		return Bundle{}, err
	}
	return newBundle(set, o.img), nil
}

// FromBitmapPair creates a bundle from two bitmaps.
func FromBitmapPair(a, b image.Image, opts ...Option) Bundle {
	return FromBitmaps([]image.Image{a, b}, opts...)
}

// FromBitmap creates a single-variant bundle, or the empty bundle if bitmap
// is invalid.
func FromBitmap(bitmap image.Image, opts ...Option) Bundle {
	o := buildOptions(opts)
	return newBundle(SingleVariant(bitmap, o.img), o.img)
}

// FromImage is FromBitmap for callers holding a decoded image.
func FromImage(img image.Image, opts ...Option) Bundle {
	return FromBitmap(img, opts...)
}

// IsOk reports whether the bundle has at least one variant.
func (b Bundle) IsOk() bool {
	return b.s != nil && b.s.variants.Len() > 0
}

// Same reports whether b and other share the same underlying state.
// Two empty bundles are the same.
func (b Bundle) Same(other Bundle) bool {
	return b.s == other.s
}

// DefaultSize returns the size of the bundle at 100% scale: the size of its
// smallest variant.
func (b Bundle) DefaultSize() (Size, error) {
	if !b.IsOk() {
		return Size{}, ErrInvalidBundle
	}
	return b.s.variants.DefaultSize(), nil
}

// Variants returns the variant sizes in insertion order, or nil for an
// empty bundle.
func (b Bundle) Variants() []Size {
	if !b.IsOk() {
		return nil
	}
	return b.s.variants.Sizes()
}

// VariantSet returns the bundle's variants. The set is immutable, so it is
// safe to keep and read concurrently.
func (b Bundle) VariantSet() VariantSet {
	if b.s == nil {
		return VariantSet{}
	}
	return b.s.variants
}

// Origin says how a bitmap returned by Bitmap was obtained.
type Origin int

const (
	// FromVariant means the bitmap is one of the bundle's own variants.
	FromVariant Origin = iota
	// FromCache means the bitmap was rescaled by an earlier request.
	FromCache
	// Rescaled means the bitmap was rescaled by this request.
	Rescaled
)

func (o Origin) String() string {
	switch o {
	case FromVariant:
		return "variant"
	case FromCache:
		return "cache"
	case Rescaled:
		return "rescaled"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// Resolution is a bitmap returned by Bitmap together with how it was made.
type Resolution struct {
	Image  image.Image
	Size   Size
	Origin Origin

	// Source is the size of the variant the bitmap was rescaled from. It is
	// only set when Origin is Rescaled.
	Source Size
}

// GetBitmap returns a bitmap of exactly target size, rescaling the closest
// variant and caching the result when no variant has that size.
func (b Bundle) GetBitmap(target Size) (image.Image, error) {
	r, err := b.Bitmap(target)
	if err != nil {
		return nil, err
	}
	return r.Image, nil
}

// Bitmap is GetBitmap with details about where the bitmap came from.
func (b Bundle) Bitmap(target Size) (Resolution, error) {
	if !b.IsOk() {
		return Resolution{}, ErrInvalidBundle
	}
	if target.Empty() {
		return Resolution{}, fmt.Errorf("%w: %v", ErrInvalidSize, target)
	}

	s := b.s
	if v, ok := s.variants.Exact(target); ok {
		return Resolution{Image: v.Image, Size: target, Origin: FromVariant}, nil
	}
	if img, ok := s.cache.Lookup(target); ok {
		return Resolution{Image: img, Size: target, Origin: FromCache}, nil
	}

	src := Resolve(s.variants, target)
	img := s.img.Resize(src.Image, target)
	s.cache.Store(target, img)
	return Resolution{Image: img, Size: target, Origin: Rescaled, Source: src.Size()}, nil
}

// BitmapForScale returns the bitmap for the default size multiplied by
// scale, e.g. 1.5 for a 150% display.
func (b Bundle) BitmapForScale(scale float64) (Resolution, error) {
	if !b.IsOk() {
		return Resolution{}, ErrInvalidBundle
	}
	if !(scale > 0) {
		return Resolution{}, fmt.Errorf("%w: scale %g", ErrInvalidSize, scale)
	}
	return b.Bitmap(b.s.variants.DefaultSize().Scale(scale))
}

// SourceFor returns the variant GetBitmap would rescale from for target.
func (b Bundle) SourceFor(target Size) (Variant, error) {
	if !b.IsOk() {
		return Variant{}, ErrInvalidBundle
	}
	if target.Empty() {
		return Variant{}, fmt.Errorf("%w: %v", ErrInvalidSize, target)
	}
	return Resolve(b.s.variants, target), nil
}

// Rescale resizes img to target with the bundle's raster capability,
// bypassing the cache.
func (b Bundle) Rescale(img image.Image, target Size) (image.Image, error) {
	if !b.IsOk() {
		return nil, ErrInvalidBundle
	}
	if target.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, target)
	}
	return b.s.img.Resize(img, target), nil
}

// CachedSizes returns the sizes currently held in the rescale cache.
func (b Bundle) CachedSizes() []Size {
	if !b.IsOk() {
		return nil
	}
	return b.s.cache.Sizes()
}

// CacheStats returns a snapshot of the rescale cache counters.
func (b Bundle) CacheStats() CacheStats {
	if !b.IsOk() {
		return CacheStats{}
	}
	return b.s.cache.Stats()
}
