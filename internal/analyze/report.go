package analyze

// Measurement is one lesion type's entry in the measurement record.
type Measurement struct {
	// Type is the measurement kind's display name: "Area", "Max Height"
	// or "Max Width".
	Type string `json:"type"`

	// Data is a measure.Quantity for single-valued kinds, or a
	// []measure.Quantity for per-component kinds, ordered by component
	// id.
	Data interface{} `json:"data"`

	// Color is the lesion's display color as "#RRGGBB".
	Color string `json:"color"`
}

// Report is the structured measurement record for one image. It maps
// straight to the persisted JSON document; file naming and encoding
// are the batch driver's business.
type Report struct {
	// Filename is the source image's file name, set by the driver.
	Filename string `json:"filename"`

	// PixelSpacingUM is the supplied pixel spacing in micrometres per
	// pixel, or null when measurements are reported in raw pixels.
	PixelSpacingUM *float64 `json:"pixel_spacing_um"`

	// Width and Height are the source image dimensions; the annotation
	// layer and the normalized mask share them.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Measurements maps lesion type name to its entry. Absent lesion
	// types have no key.
	Measurements map[string]Measurement `json:"measurements"`

	// OutputImage and OverlayImage name the persisted composite and
	// annotation layer files, set by the driver after writing them.
	OutputImage  string `json:"output_image,omitempty"`
	OverlayImage string `json:"overlay_image,omitempty"`
}
