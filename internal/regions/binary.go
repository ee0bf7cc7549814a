package regions

import (
	"image"
	"image/color"
)

// Binary is a width×height indicator grid for a single lesion type:
// true where the label mask carries the lesion's code, false elsewhere.
type Binary struct {
	width, height int
	cells         []bool
}

// NewBinary creates an all-background indicator of the given size.
func NewBinary(width, height int) *Binary {
	return &Binary{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the indicator width in pixels.
func (b *Binary) Width() int { return b.width }

// Height returns the indicator height in pixels.
func (b *Binary) Height() int { return b.height }

// Set marks the pixel at (x, y) as foreground.
// Coordinates outside the grid are ignored.
func (b *Binary) Set(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = true
}

// At reports whether the pixel at (x, y) is foreground.
// Coordinates outside the grid are background.
func (b *Binary) At(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.cells[y*b.width+x]
}

// Count returns the number of foreground pixels. For area-kind lesion
// types this is the raw measurement.
func (b *Binary) Count() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Image renders the indicator as a grayscale image with foreground
// pixels at 255, the form the contour edge filter consumes.
func (b *Binary) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y*b.width+x] {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
