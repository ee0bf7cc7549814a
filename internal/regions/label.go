package regions

import "image"

// Region is one maximal 8-connected component of a binary indicator.
type Region struct {
	// ID is the component id, starting at 1 in row-major discovery order.
	ID int

	// Pixels are the member coordinates in fill order.
	Pixels []image.Point

	// Bounding extrema, inclusive.
	MinX, MaxX, MinY, MaxY int
}

// Label partitions a binary indicator into its 8-connected components.
//
// Every foreground pixel belongs to exactly one returned region. Ids
// are assigned in row-major scan order starting at 1, so the result is
// deterministic for a fixed indicator. An all-background indicator
// yields an empty slice.
func Label(b *Binary) []Region {
	visited := make([]bool, b.width*b.height)
	var regs []Region

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if !b.At(x, y) || visited[y*b.width+x] {
				continue
			}
			r := Region{
				ID:   len(regs) + 1,
				MinX: x, MaxX: x, MinY: y, MaxY: y,
			}
			fill(b, visited, x, y, &r)
			regs = append(regs, r)
		}
	}
	return regs
}

// fill grows a region from a seed pixel using an iterative stack-based
// flood fill with 8-connected neighbors. Iterative to avoid stack
// overflow on large components.
func fill(b *Binary, visited []bool, startX, startY int, r *Region) {
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !b.At(p.X, p.Y) || visited[p.Y*b.width+p.X] {
			continue
		}
		visited[p.Y*b.width+p.X] = true
		r.Pixels = append(r.Pixels, p)

		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if b.At(p.X+dx, p.Y+dy) && !visited[(p.Y+dy)*b.width+p.X+dx] {
					stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
				}
			}
		}
	}
}
