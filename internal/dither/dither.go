// Package dither implements Floyd-Steinberg error diffusion over a
// luminance grid.
package dither

import (
	"errors"
	"fmt"
	"math"

	"github.com/AnyUserName/gifscii-cli/internal/raster"
)

// ErrInvalidLevels is returned when fewer than one output level is requested.
var ErrInvalidLevels = errors.New("dither: levels must be >= 1")

// FloydSteinberg quantizes the grid to the given number of levels,
// diffusing the quantization error of each cell to its unvisited
// neighbors (7/16 right, 3/16 below-left, 5/16 below, 1/16 below-right).
//
// Cells are visited in strict raster order. The order is load-bearing:
// the cell to the right receives error before it is itself quantized,
// so this loop cannot be reordered or parallelized. The input grid is
// not modified; a quantized copy is returned.
func FloydSteinberg(g *raster.Grid, levels int) (*raster.Grid, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevels, levels)
	}
	step := 1.0
	if levels > 1 {
		step = 1.0 / float64(levels-1)
	}

	out := g.Clone()
	w, h := out.W, out.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := out.Pix[y*w+x]
			quantized := math.Round(old/step) * step
			if quantized < 0 {
				quantized = 0
			} else if quantized > 1 {
				quantized = 1
			}
			out.Pix[y*w+x] = quantized
			err := old - quantized

			if x+1 < w {
				out.Pix[y*w+x+1] += err * 7 / 16
			}
			if y+1 < h {
				if x-1 >= 0 {
					out.Pix[(y+1)*w+x-1] += err * 3 / 16
				}
				out.Pix[(y+1)*w+x] += err * 5 / 16
				if x+1 < w {
					out.Pix[(y+1)*w+x+1] += err * 1 / 16
				}
			}
		}
	}

	// Diffused error can leave edge neighbors slightly out of range even
	// though each quantized cell is clamped above.
	out.Clamp()
	return out, nil
}
