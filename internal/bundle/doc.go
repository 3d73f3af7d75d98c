// Package bundle implements bitmap bundles: several rasters of the same
// logical graphic at different natural sizes, treated as one value.
//
// A Bundle answers GetBitmap for any requested size. An exact variant is
// returned as is; anything else is produced by rescaling the best source
// variant (see Resolve) and memoized in a RescaleCache shared by every copy
// of the bundle.
//
// # Value Semantics
//
// Bundle is a small struct holding a pointer to shared state. Copying it with
// ordinary assignment is cheap and both copies observe the same variants and
// the same cache. The zero Bundle is empty and reports IsOk() == false.
//
// # Cache Growth
//
// Rescaled bitmaps are never evicted. Every distinct size ever requested from
// a bundle keeps one cache entry for as long as any copy of the bundle is
// reachable. Avoid requesting many different sizes from a long-lived bundle.
//
// # Thread Safety
//
// Variant sets are immutable. The rescale cache is guarded by a mutex, so
// GetBitmap may be called concurrently on copies of the same bundle. Two
// goroutines missing the cache for the same size may both rescale; the last
// store wins and both results are equivalent.
package bundle
