package regions

// Column is the vertical span of one x-coordinate within a region.
type Column struct {
	X    int // Column x-coordinate
	TopY int // Smallest member y
	BotY int // Largest member y
}

// Height returns the column's vertical span in pixels.
func (c Column) Height() int {
	return c.BotY - c.TopY
}

// TallestColumn returns the column with the greatest vertical span
// among the distinct x-coordinates present in the region. When several
// columns tie, the smallest x wins. This column is the representative
// caliper location for height-kind measurements.
//
// A region always has at least one pixel, so a column is always found.
func (r *Region) TallestColumn() Column {
	n := r.MaxX - r.MinX + 1
	top := make([]int, n)
	bot := make([]int, n)
	seen := make([]bool, n)

	for _, p := range r.Pixels {
		i := p.X - r.MinX
		if !seen[i] {
			seen[i] = true
			top[i], bot[i] = p.Y, p.Y
			continue
		}
		if p.Y < top[i] {
			top[i] = p.Y
		}
		if p.Y > bot[i] {
			bot[i] = p.Y
		}
	}

	best := Column{X: -1}
	for i := 0; i < n; i++ {
		if !seen[i] {
			continue
		}
		if best.X < 0 || bot[i]-top[i] > best.Height() {
			best = Column{X: r.MinX + i, TopY: top[i], BotY: bot[i]}
		}
	}
	return best
}

// BottomSpan returns the horizontal extent of the region's lowest pixel
// row: the min and max x among pixels at y == MaxY. Arrow markers are
// centered on this span.
func (r *Region) BottomSpan() (minX, maxX, y int) {
	y = r.MaxY
	minX, maxX = -1, -1
	for _, p := range r.Pixels {
		if p.Y != y {
			continue
		}
		if minX < 0 || p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	return minX, maxX, y
}

// Band is the baseline band of an indicator: all pixels whose y lies
// within a fixed distance above the indicator's lowest pixel row.
type Band struct {
	MinX  int // Smallest x in the band
	MaxX  int // Largest x in the band
	BaseY int // Largest y over all foreground pixels
}

// Width returns the band's horizontal span in pixels.
func (b Band) Width() int {
	return b.MaxX - b.MinX
}

// BottomBand collects the baseline band of an indicator: base y is the
// maximum y over all foreground pixels, and the band holds every
// foreground pixel with y >= baseY-depth. The second return is false
// when the indicator is empty.
func BottomBand(b *Binary, depth int) (Band, bool) {
	baseY := -1
	for y := b.height - 1; y >= 0 && baseY < 0; y-- {
		for x := 0; x < b.width; x++ {
			if b.At(x, y) {
				baseY = y
				break
			}
		}
	}
	if baseY < 0 {
		return Band{}, false
	}

	band := Band{MinX: -1, MaxX: -1, BaseY: baseY}
	lo := baseY - depth
	if lo < 0 {
		lo = 0
	}
	for y := lo; y <= baseY; y++ {
		for x := 0; x < b.width; x++ {
			if !b.At(x, y) {
				continue
			}
			if band.MinX < 0 || x < band.MinX {
				band.MinX = x
			}
			if x > band.MaxX {
				band.MaxX = x
			}
		}
	}
	return band, true
}
