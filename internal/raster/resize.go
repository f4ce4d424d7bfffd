package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidDimensions is returned when a resize target has a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("raster: invalid target dimensions")

// Resize scales img to exactly dstW×dstH using Lanczos resampling.
// Downscale ratios of 10-50x are the normal case (a 640px wide source
// onto an 80-column grid).
func Resize(img image.Image, dstW, dstH int) (*image.NRGBA, error) {
	if dstW < 1 || dstH < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, dstW, dstH)
	}
	return imaging.Resize(img, dstW, dstH, imaging.Lanczos), nil
}
