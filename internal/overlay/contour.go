package overlay

import (
	"image/color"

	"github.com/anthonynsimon/bild/effect"

	"github.com/retinalab/oct-lesion-tools/internal/regions"
)

// Contour outlines a lesion's footprint on the canvas.
//
// The binary indicator is run through a 3x3 edge-detection filter,
// which is zero everywhere except at indicator boundaries; the filter
// response becomes the alpha of a solid color fill, producing a thin
// outline of the footprint rather than a filled region.
func (c *Canvas) Contour(bin *regions.Binary, col color.NRGBA) {
	edges := effect.EdgeDetection(bin.Image(), 1.0)

	w, h := bin.Width(), bin.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			strength := edges.RGBAAt(x, y).R
			if strength == 0 {
				continue
			}
			c.set(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: strength})
		}
	}
}
