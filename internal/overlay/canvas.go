package overlay

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Canvas is a transparent annotation layer the draw primitives paint
// onto. The zero alpha everywhere means an untouched canvas composites
// to a no-op.
type Canvas struct {
	img *image.NRGBA
}

// New creates a fully transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the annotation layer. The caller must not assume it is
// a copy; encode or composite it before drawing more.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// set paints one pixel, ignoring coordinates outside the canvas.
func (c *Canvas) set(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

// Composite alpha-composites the annotation layer over a source image,
// producing the combined review image. The canvas itself is unchanged.
func Composite(src image.Image, c *Canvas) *image.NRGBA {
	return imaging.Overlay(src, c.img, image.Pt(0, 0), 1.0)
}
