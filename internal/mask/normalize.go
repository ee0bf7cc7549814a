package mask

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// Normalize returns the label mask of a decoded mask image, resampled
// to exactly width×height if its dimensions differ.
//
// Resampling uses nearest-neighbor sampling so label codes are copied,
// never blended. A resample is reported through the logger as a warn
// diagnostic; same-size masks pass through untouched.
func Normalize(maskImg image.Image, width, height int, log zerolog.Logger) *LabelMask {
	bounds := maskImg.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return FromImage(maskImg)
	}

	log.Warn().
		Int("mask_width", bounds.Dx()).
		Int("mask_height", bounds.Dy()).
		Int("image_width", width).
		Int("image_height", height).
		Msg("mask dimensions differ from image, resampling with nearest-neighbor")

	// Codes are extracted first so paletted masks resample by index
	// value, not by palette color.
	resized := imaging.Resize(codeImage(maskImg), width, height, imaging.NearestNeighbor)

	m := &LabelMask{
		width:  width,
		height: height,
		codes:  make([]uint8, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Nearest-neighbor keeps R == G == B == code.
			m.codes[y*width+x] = resized.NRGBAAt(x, y).R
		}
	}
	return m
}

// codeImage renders the mask's label codes as a grayscale image, the
// stable form to feed the resampler regardless of the source color
// model.
func codeImage(maskImg image.Image) *image.Gray {
	src := FromImage(maskImg)
	img := image.NewGray(image.Rect(0, 0, src.width, src.height))
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			img.Pix[y*img.Stride+x] = src.codes[y*src.width+x]
		}
	}
	return img
}
