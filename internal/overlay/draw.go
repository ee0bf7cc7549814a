package overlay

import "image/color"

// Stroke and cap sizes shared by the annotation primitives.
const (
	strokeWidth  = 2
	capHalfVert  = 8 // cap half-width of the vertical I-beam caliper
	capHalfHoriz = 5 // cap half-length of the horizontal caliper
	arrowOffset  = 3 // gap between a region's lowest row and the arrow tip
	arrowHeight  = 7
	arrowHalf    = 5
	arrowTail    = 6
)

// strokeH paints a horizontal stroke from (x1, y) to (x2, y), thickened
// downward to strokeWidth. Endpoints may be given in either order.
func (c *Canvas) strokeH(x1, x2, y int, col color.NRGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for w := 0; w < strokeWidth; w++ {
		for x := x1; x <= x2; x++ {
			c.set(x, y+w, col)
		}
	}
}

// strokeV paints a vertical stroke from (x, y1) to (x, y2), thickened
// rightward to strokeWidth. Endpoints may be given in either order.
func (c *Canvas) strokeV(x, y1, y2 int, col color.NRGBA) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for w := 0; w < strokeWidth; w++ {
		for y := y1; y <= y2; y++ {
			c.set(x+w, y, col)
		}
	}
}

// VerticalCaliper draws an I-beam depicting a vertical extent: a
// stroke from (x, y1) to (x, y2) capped by short horizontal strokes at
// both ends.
func (c *Canvas) VerticalCaliper(x, y1, y2 int, col color.NRGBA) {
	c.strokeV(x, y1, y2, col)
	c.strokeH(x-capHalfVert, x+capHalfVert, y1, col)
	c.strokeH(x-capHalfVert, x+capHalfVert, y2, col)
}

// HorizontalCaliper draws a capped bar depicting a horizontal extent:
// a stroke from (x1, y) to (x2, y) with short vertical caps at both
// ends.
func (c *Canvas) HorizontalCaliper(x1, x2, y int, col color.NRGBA) {
	c.strokeH(x1, x2, y, col)
	c.strokeV(x1, y-capHalfHoriz, y+capHalfHoriz, col)
	c.strokeV(x2, y-capHalfHoriz, y+capHalfHoriz, col)
}

// Arrow draws a compact upward-pointing marker beneath a small
// component: a filled isoceles triangle whose tip sits arrowOffset
// pixels below bottomY, centered on cx, with a short tail line below
// the triangle's base.
func (c *Canvas) Arrow(cx, bottomY int, col color.NRGBA) {
	tipY := bottomY + arrowOffset
	for dy := 0; dy <= arrowHeight; dy++ {
		half := dy * arrowHalf / arrowHeight
		for x := cx - half; x <= cx+half; x++ {
			c.set(x, tipY+dy, col)
		}
	}
	c.strokeV(cx, tipY+arrowHeight, tipY+arrowHeight+arrowTail, col)
}
