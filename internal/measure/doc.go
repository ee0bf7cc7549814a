// Package measure defines the measurement kinds reported for retinal
// lesions and the conversion from raw pixel values to physical units.
//
// A measurement is either an area (pixel count of a lesion's footprint)
// or a linear extent (maximum height of a component, maximum width of a
// baseline band). Raw values are always integer pixel quantities; the
// Scale type converts them to the reported Quantity.
//
// # Units and Rounding
//
// The reported unit depends on whether a pixel spacing was supplied:
//
//   - No spacing: raw pixels, rounded to 2 decimal places, unit "px"
//   - Spacing s, linear kinds: value*s micrometres, rounded to 1 decimal
//     place, unit "um"
//   - Spacing s, area kind: value*s²/1e6 square millimetres, rounded to
//     4 decimal places, unit "mm2"
//
// The rounding precisions are part of the output contract; downstream
// consumers rely on a stable decimal width.
package measure
