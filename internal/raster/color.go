package raster

import "image"

// RGB is one sampled cell color.
type RGB [3]uint8

// SampleColors returns one RGB triple per character cell by resizing the
// source frame to exactly w×h and reading each resulting pixel.
func SampleColors(img image.Image, w, h int) ([][]RGB, error) {
	resized, err := Resize(img, w, h)
	if err != nil {
		return nil, err
	}
	colors := make([][]RGB, h)
	for y := 0; y < h; y++ {
		row := make([]RGB, w)
		for x := 0; x < w; x++ {
			i := resized.PixOffset(x, y)
			row[x] = RGB{resized.Pix[i], resized.Pix[i+1], resized.Pix[i+2]}
		}
		colors[y] = row
	}
	return colors, nil
}

// SampleBrailleColors returns one RGB triple per braille cell. The source
// is resized to the braille dot resolution (2w×4h) and each 2×4 block is
// averaged per channel, rounded to the nearest integer.
func SampleBrailleColors(img image.Image, w, h int) ([][]RGB, error) {
	resized, err := Resize(img, w*2, h*4)
	if err != nil {
		return nil, err
	}
	colors := make([][]RGB, h)
	for y := 0; y < h; y++ {
		row := make([]RGB, w)
		for x := 0; x < w; x++ {
			var sum [3]uint32
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					i := resized.PixOffset(x*2+dx, y*4+dy)
					sum[0] += uint32(resized.Pix[i])
					sum[1] += uint32(resized.Pix[i+1])
					sum[2] += uint32(resized.Pix[i+2])
				}
			}
			row[x] = RGB{
				uint8((sum[0] + 4) / 8),
				uint8((sum[1] + 4) / 8),
				uint8((sum[2] + 4) / 8),
			}
		}
		colors[y] = row
	}
	return colors, nil
}

// InvertColors flips every channel (255 - c) in place.
func InvertColors(colors [][]RGB) {
	for _, row := range colors {
		for i, c := range row {
			row[i] = RGB{255 - c[0], 255 - c[1], 255 - c[2]}
		}
	}
}
