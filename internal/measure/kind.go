package measure

import "fmt"

// Kind identifies how a lesion type is measured.
type Kind int

const (
	// KindArea measures the pixel count of the lesion's footprint.
	KindArea Kind = iota

	// KindMaxHeight measures the tallest column of each connected
	// component, one value per component.
	KindMaxHeight

	// KindMaxWidth measures the horizontal span of the lesion's
	// baseline band.
	KindMaxWidth
)

// String returns the display name used in the measurement record.
func (k Kind) String() string {
	switch k {
	case KindArea:
		return "Area"
	case KindMaxHeight:
		return "Max Height"
	case KindMaxWidth:
		return "Max Width"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Linear reports whether the kind is a length measurement (as opposed
// to an area measurement).
func (k Kind) Linear() bool {
	return k == KindMaxHeight || k == KindMaxWidth
}

// ParseKind parses the configuration spelling of a measurement kind.
// Accepted values are "area", "max-height" and "max-width".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "area":
		return KindArea, nil
	case "max-height":
		return KindMaxHeight, nil
	case "max-width":
		return KindMaxWidth, nil
	}
	return 0, fmt.Errorf("unknown measurement kind %q", s)
}
