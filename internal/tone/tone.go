// Package tone converts RGBA pixels to luminance and applies
// brightness, contrast and inversion adjustments.
package tone

import (
	"image"

	"github.com/AnyUserName/gifscii-cli/internal/raster"
)

// BT.601 luma weights. Kept exact: output parity with other renderers of
// the same frames depends on this precise weighting.
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// ToGrayscale extracts a luminance grid in [0, 1] from an NRGBA image.
// Alpha is ignored; composited frames are already flattened.
func ToGrayscale(img *image.NRGBA) *raster.Grid {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	g := raster.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
			lum := weightR*float64(img.Pix[i]) +
				weightG*float64(img.Pix[i+1]) +
				weightB*float64(img.Pix[i+2])
			g.Pix[y*w+x] = lum / 255.0
		}
	}
	return g
}

// Adjust applies brightness then contrast in place and clamps to [0, 1].
// brightness is in [-100, 100] (0 = neutral), contrast in [0, 200]
// (100 = neutral). Neutral values are exact no-ops.
func Adjust(g *raster.Grid, brightness, contrast int) {
	if brightness != 0 {
		offset := float64(brightness) / 100.0
		for i := range g.Pix {
			g.Pix[i] += offset
		}
	}
	if contrast != 100 {
		factor := float64(contrast) / 100.0
		for i := range g.Pix {
			g.Pix[i] = (g.Pix[i]-0.5)*factor + 0.5
		}
	}
	g.Clamp()
}

// Invert flips luminance in place (v -> 1-v). Applied after Adjust, as
// the last tone step before dithering or quantization.
func Invert(g *raster.Grid) {
	for i, v := range g.Pix {
		g.Pix[i] = 1 - v
	}
}
