package analyze

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/retinalab/oct-lesion-tools/internal/config"
	"github.com/retinalab/oct-lesion-tools/internal/mask"
	"github.com/retinalab/oct-lesion-tools/internal/measure"
	"github.com/retinalab/oct-lesion-tools/internal/overlay"
	"github.com/retinalab/oct-lesion-tools/internal/regions"
)

// Analyzer runs the measurement pipeline with a fixed configuration
// and unit scale. It holds no per-image state.
type Analyzer struct {
	cfg   config.Config
	scale measure.Scale
	log   zerolog.Logger
}

// New creates an Analyzer. The configuration must have passed
// config.Validate.
func New(cfg config.Config, scale measure.Scale, log zerolog.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, scale: scale, log: log}
}

// Analyze measures every configured lesion type in the mask and builds
// the annotation layer, both in the source image's coordinate space.
//
// The mask is normalized to the source dimensions first. Lesion types
// with no pixels are omitted from both the report and the canvas. The
// returned report carries no file names; the driver fills those in
// after persisting the outputs.
func (a *Analyzer) Analyze(src image.Image, maskImg image.Image) (*Report, *overlay.Canvas, error) {
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil, nil, fmt.Errorf("source image is empty (%dx%d)", width, height)
	}

	m := mask.Normalize(maskImg, width, height, a.log)
	canvas := overlay.New(width, height)

	report := &Report{
		Width:        width,
		Height:       height,
		Measurements: make(map[string]Measurement),
	}
	if a.scale.IsPhysical() {
		spacing := a.scale.Spacing()
		report.PixelSpacingUM = &spacing
	}

	var legend []overlay.LegendEntry

	for _, lesion := range a.cfg.Lesions {
		bin := m.Indicator(lesion.Code)
		col := lesion.NRGBA()

		var entry *Measurement
		switch lesion.MeasureKind() {
		case measure.KindArea:
			entry = a.measureArea(bin, canvas, col)
		case measure.KindMaxHeight:
			entry = a.measureHeights(bin, canvas, col)
		case measure.KindMaxWidth:
			entry = a.measureBaselineWidth(bin, canvas, col)
		}
		if entry == nil {
			continue
		}

		entry.Color = lesion.Color
		report.Measurements[lesion.Name] = *entry
		legend = append(legend, overlay.LegendEntry{Name: lesion.Name, Color: col})
	}

	canvas.Legend(legend)
	return report, canvas, nil
}

// measureArea handles contour-style lesion types: the measurement is
// the indicator's pixel count and the annotation is its outline.
func (a *Analyzer) measureArea(bin *regions.Binary, canvas *overlay.Canvas, col color.NRGBA) *Measurement {
	count := bin.Count()
	if count == 0 {
		return nil
	}

	canvas.Contour(bin, col)
	return &Measurement{
		Type: measure.KindArea.String(),
		Data: a.scale.Convert(float64(count), measure.KindArea),
	}
}

// measureHeights handles per-component height lesion types: each
// 8-connected component contributes its tallest column, annotated as
// an I-beam caliper, or as an arrow when the component is too small
// for a caliper to be readable.
func (a *Analyzer) measureHeights(bin *regions.Binary, canvas *overlay.Canvas, col color.NRGBA) *Measurement {
	regs := regions.Label(bin)
	if len(regs) == 0 {
		return nil
	}

	values := make([]measure.Quantity, 0, len(regs))
	for i := range regs {
		column := regs[i].TallestColumn()
		h := column.Height()
		values = append(values, a.scale.Convert(float64(h), measure.KindMaxHeight))

		if h < a.cfg.CaliperMinHeightPx {
			minX, maxX, bottomY := regs[i].BottomSpan()
			canvas.Arrow((minX+maxX)/2, bottomY, col)
		} else {
			canvas.VerticalCaliper(column.X, column.TopY, column.BotY, col)
		}
	}

	return &Measurement{
		Type: measure.KindMaxHeight.String(),
		Data: values,
	}
}

// measureBaselineWidth handles baseline-band lesion types: the
// measurement is the horizontal span of all pixels within the band
// above the lesion's lowest row, annotated as a horizontal caliper
// just below the baseline.
func (a *Analyzer) measureBaselineWidth(bin *regions.Binary, canvas *overlay.Canvas, col color.NRGBA) *Measurement {
	band, ok := regions.BottomBand(bin, a.cfg.BaselineBandPx)
	if !ok {
		return nil
	}

	canvas.HorizontalCaliper(band.MinX, band.MaxX, band.BaseY+2, col)
	return &Measurement{
		Type: measure.KindMaxWidth.String(),
		Data: a.scale.Convert(float64(band.Width()), measure.KindMaxWidth),
	}
}
