package mask

import (
	"image"
	"image/color"

	"github.com/retinalab/oct-lesion-tools/internal/regions"
)

// LabelMask is a width×height grid of integer label codes, one code
// per lesion type plus 0 for background. After normalization its
// dimensions equal the source image's.
type LabelMask struct {
	width, height int
	codes         []uint8
}

// Width returns the mask width in pixels.
func (m *LabelMask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *LabelMask) Height() int { return m.height }

// CodeAt returns the label code at (x, y). Coordinates outside the
// mask are background.
func (m *LabelMask) CodeAt(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return int(m.codes[y*m.width+x])
}

// Indicator builds the binary indicator for one label code: foreground
// exactly where the mask carries that code. Codes absent from the mask
// yield an all-background indicator.
func (m *LabelMask) Indicator(code int) *regions.Binary {
	b := regions.NewBinary(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if int(m.codes[y*m.width+x]) == code {
				b.Set(x, y)
			}
		}
	}
	return b
}

// FromImage reads the label codes out of a decoded mask image.
//
// Grayscale images map pixel value to code directly (16-bit values are
// scaled down to 8-bit). Paletted images map each pixel to its palette
// index, matching how segmentation tools emit indexed masks. Any other
// color model is converted through the standard grayscale model, which
// is exact for the gray-valued RGB masks resampling produces.
func FromImage(img image.Image) *LabelMask {
	bounds := img.Bounds()
	m := &LabelMask{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		codes:  make([]uint8, bounds.Dx()*bounds.Dy()),
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.codes[y*m.width+x] = codeOf(img, bounds.Min.X+x, bounds.Min.Y+y)
		}
	}
	return m
}

func codeOf(img image.Image, x, y int) uint8 {
	switch src := img.(type) {
	case *image.Gray:
		return src.GrayAt(x, y).Y
	case *image.Gray16:
		return uint8(src.Gray16At(x, y).Y >> 8)
	case *image.Paletted:
		return src.ColorIndexAt(x, y)
	default:
		return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
	}
}
