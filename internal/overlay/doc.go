// Package overlay renders measurement annotations onto a transparent
// layer separate from the source image.
//
// All geometry is computed in the source image's pixel coordinate
// space and drawn onto a fully transparent RGBA canvas of identical
// dimensions, so the annotation can be composited over the scan,
// inspected on its own, or discarded without touching source pixels.
//
// # Primitives
//
//   - Contour: a one-pixel-ish outline of a lesion's footprint, derived
//     from an edge filter over the binary indicator
//   - VerticalCaliper: an I-beam depicting a component's max height
//   - HorizontalCaliper: a capped bar depicting a baseline width
//   - Arrow: a compact pointer substituted for the vertical caliper on
//     components too small to annotate without occluding them
//   - Legend: color swatches with type names, stacked top to bottom
//
// Strokes are 2 px wide. Caliper caps have half-width 8 (vertical
// I-beam) and 5 (horizontal bar), matching the reference annotations.
package overlay
