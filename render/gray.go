package render

import (
	"image"
	"image/color"

	mandel "github.com/marben/mandelplot"
)

// levels in the colour lookup table
const levels = 256

// Grayscale maps a raster to a reversed gray image: the lowest escape time is
// white and the highest black. Values are normalised to the raster's own
// min/max. Row 0 of the raster (Ymin) becomes the bottom row of the image.
func Grayscale(r mandel.Raster) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Cols, r.Rows))
	lo, hi := r.MinMax()
	for yi := 0; yi < r.Rows; yi++ {
		py := r.Rows - 1 - yi
		for xi := 0; xi < r.Cols; xi++ {
			img.SetGray(xi, py, shade(r.At(xi, yi), lo, hi))
		}
	}
	return img
}

func shade(v, lo, hi int) color.Gray {
	if hi <= lo {
		return color.Gray{Y: 255}
	}
	idx := (v - lo) * levels / (hi - lo)
	idx = min(max(idx, 0), levels-1)
	return color.Gray{Y: uint8(levels - 1 - idx)}
}
