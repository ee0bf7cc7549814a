package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LegendEntry is one legend row: a lesion type's name and its display
// color.
type LegendEntry struct {
	Name  string
	Color color.NRGBA
}

const (
	legendMargin    = 8
	legendRowHeight = 16
	legendSwatch    = 10
	legendGap       = 6
)

// Legend draws one swatch-and-label row per entry, stacked top to
// bottom in the order given, starting at the canvas's top-left corner.
// Callers pass only lesion types that produced a measurement; an empty
// slice draws nothing, leaving no placeholder slots.
func (c *Canvas) Legend(entries []LegendEntry) {
	labelCol := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	for i, e := range entries {
		top := legendMargin + i*legendRowHeight

		for dy := 0; dy < legendSwatch; dy++ {
			for dx := 0; dx < legendSwatch; dx++ {
				c.set(legendMargin+dx, top+dy, e.Color)
			}
		}

		d := font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(labelCol),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(legendMargin+legendSwatch+legendGap, top+legendSwatch),
		}
		d.DrawString(e.Name)
	}
}
