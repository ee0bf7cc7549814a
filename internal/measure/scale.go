package measure

import (
	"fmt"
	"math"
)

// Quantity is a converted measurement value with its unit.
type Quantity struct {
	Value float64 `json:"value"` // Rounded per the unit's contract
	Unit  string  `json:"unit"`  // "px", "um" or "mm2"
}

// Scale converts raw pixel measurements into reported quantities.
//
// A Scale either passes pixel values through unchanged (no spacing
// known) or applies a physical pixel spacing in micrometres per pixel.
// The zero value is the pixel scale.
type Scale struct {
	spacing  float64
	physical bool
}

// Pixels returns a scale that reports raw pixel units.
func Pixels() Scale {
	return Scale{}
}

// Physical returns a scale for the given pixel spacing in micrometres
// per pixel. The spacing must be positive.
func Physical(spacing float64) (Scale, error) {
	if spacing <= 0 {
		return Scale{}, fmt.Errorf("pixel spacing must be positive, got %g", spacing)
	}
	return Scale{spacing: spacing, physical: true}, nil
}

// IsPhysical reports whether a pixel spacing was supplied.
func (s Scale) IsPhysical() bool {
	return s.physical
}

// Spacing returns the pixel spacing in micrometres per pixel, or 0 for
// the pixel scale.
func (s Scale) Spacing() float64 {
	return s.spacing
}

// Convert maps a raw pixel measurement to a reported Quantity.
//
// Without a spacing the value is reported in pixels rounded to 2
// decimal places. With a spacing, linear kinds become micrometres
// rounded to 1 decimal place and the area kind becomes square
// millimetres rounded to 4 decimal places.
//
// An unrecognized kind is a programming error and panics.
func (s Scale) Convert(valuePx float64, kind Kind) Quantity {
	switch kind {
	case KindArea, KindMaxHeight, KindMaxWidth:
	default:
		panic(fmt.Sprintf("measure: unsupported kind %d", int(kind)))
	}

	if !s.physical {
		return Quantity{Value: round(valuePx, 2), Unit: "px"}
	}
	if kind.Linear() {
		return Quantity{Value: round(valuePx*s.spacing, 1), Unit: "um"}
	}
	return Quantity{Value: round(valuePx*s.spacing*s.spacing/1_000_000, 4), Unit: "mm2"}
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}
