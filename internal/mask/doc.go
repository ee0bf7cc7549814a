// Package mask models the integer-coded label mask of a retinal scan
// and aligns it with the source image.
//
// A label mask is an image in which each pixel value identifies a
// lesion type (or background). Masks are normally grayscale PNGs whose
// 8-bit pixel value is the label code; paletted images are read by
// palette index. Pixel values that match no configured lesion code are
// treated as background by extraction, never as errors.
//
// # Normalization
//
// Segmentation models sometimes emit masks at a different resolution
// than the scan. Normalize resamples such masks to the source image's
// dimensions with nearest-neighbor sampling, which copies source pixel
// values verbatim and can never invent label codes that do not exist
// in the input. Interpolating resamplers would blend neighboring codes
// into new values at lesion boundaries and must not be used here.
package mask
