// Package analyze runs the lesion measurement pipeline for one image:
// normalize the label mask, extract each configured lesion type,
// decompose multi-blob types into connected components, convert raw
// pixel values to reported units, and build the annotation geometry.
//
// The pipeline is single-threaded and synchronous. An Analyzer holds
// only immutable configuration, so one Analyzer can serve any number
// of images and distinct Analyzers never interfere.
//
// # Absence Means Omission
//
// A lesion type with zero pixels in the mask produces no measurement
// entry and no geometry at all. The output record never contains
// zero-valued placeholder entries.
package analyze
