// Package imaging provides the concrete raster operations behind bitmap
// bundles: decoding variant files, resampling, and inspecting resolved
// bitmaps.
//
// # Resampling
//
// Resampler returns a ResampleFunc by filter name. Filters come from three
// libraries: disintegration/imaging (unprefixed names, Lanczos by default),
// bild/transform ("bild-" prefix) and golang.org/x/image/draw ("xdraw-"
// prefix). A ResampleFunc converts directly to bundle.Scaler.
//
// # Loading
//
// ImageCache decodes PNG, JPEG, GIF, BMP, TIFF and WebP files and keeps the
// decoded images keyed by path. It is safe for concurrent use.
//
// # Inspection
//
// SampleColor and CompareImages work on any image.Image. Colors are
// reported as hex, RGBA, HSL and CIE Lab (via go-colorful); comparisons
// measure per-pixel Lab distance. Pixel coordinates are 0-based and
// relative to the image's top-left corner.
package imaging
