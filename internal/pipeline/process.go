// Package pipeline turns composited frames into character grids:
// resize → tone → optional dithering → charset/braille quantization,
// with an independent color sampling pass.
package pipeline

import (
	"github.com/AnyUserName/gifscii-cli/internal/braille"
	"github.com/AnyUserName/gifscii-cli/internal/charset"
	"github.com/AnyUserName/gifscii-cli/internal/dither"
	"github.com/AnyUserName/gifscii-cli/internal/gifseq"
	"github.com/AnyUserName/gifscii-cli/internal/raster"
	"github.com/AnyUserName/gifscii-cli/internal/term"
	"github.com/AnyUserName/gifscii-cli/internal/tone"
)

// ProcessedFrame is the output for one input frame.
type ProcessedFrame struct {
	Index   int
	Lines   []string       // one string per character row
	Colors  [][]raster.RGB // per-cell RGB; nil when color mode is none
	DelayMS int
}

// Process runs one frame through the full pipeline. It is a pure
// function of (frame, settings) with no shared mutable state, so frames
// can be processed concurrently.
func Process(frame gifseq.Frame, s Settings) (ProcessedFrame, error) {
	cs, err := charset.Lookup(s.Charset)
	if err != nil {
		return ProcessedFrame{}, err
	}

	// Braille quantizes at dot resolution: 2×4 dots per cell.
	resizeW, resizeH := s.Width, s.Height
	if cs.Braille {
		resizeW, resizeH = s.Width*2, s.Height*4
	}

	resized, err := raster.Resize(frame.Image, resizeW, resizeH)
	if err != nil {
		return ProcessedFrame{}, err
	}

	grid := tone.ToGrayscale(resized)
	tone.Adjust(grid, s.Brightness, s.Contrast)
	if s.Invert {
		tone.Invert(grid)
	}

	var lines []string
	if cs.Braille {
		if s.Dither {
			grid, err = dither.FloydSteinberg(grid, 2)
			if err != nil {
				return ProcessedFrame{}, err
			}
		}
		lines = braille.Encode(braille.Threshold(grid))
	} else {
		if s.Dither {
			grid, err = dither.FloydSteinberg(grid, cs.Levels())
			if err != nil {
				return ProcessedFrame{}, err
			}
		}
		lines = cs.Map(grid)
	}

	// Color sampling works from the source frame with its own resize
	// semantics: braille cells average their 2×4 dot block, everything
	// else reads one pixel per cell.
	var colors [][]raster.RGB
	if s.ColorMode != term.ModeNone {
		if cs.Braille {
			colors, err = raster.SampleBrailleColors(frame.Image, s.Width, s.Height)
		} else {
			colors, err = raster.SampleColors(frame.Image, s.Width, s.Height)
		}
		if err != nil {
			return ProcessedFrame{}, err
		}
		// Luminance invert and color invert are driven by the same
		// setting but act on separate data.
		if s.Invert {
			raster.InvertColors(colors)
		}
	}

	return ProcessedFrame{
		Lines:   lines,
		Colors:  colors,
		DelayMS: frame.DelayMS,
	}, nil
}
