// Package media is the decode boundary: it turns input files into raw
// patch frames for the compositor. GIF bitstream parsing (LZW, palette
// resolution) is delegated to image/gif; everything downstream operates
// on decompressed RGBA patches only.
package media

import (
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/gifscii-cli/internal/gifseq"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Media holds the decoded raw frame sequence plus canvas metadata.
type Media struct {
	Frames []gifseq.RawFrame
	W, H   int    // logical canvas dimensions
	Format string // "gif" or the static image format name
}

// imageExtensions lists recognized input extensions.
var imageExtensions = map[string]bool{
	".gif":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// Supported reports whether the file extension is a recognized input.
func Supported(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Load decodes a media file into raw frames. Animated GIFs produce one
// patch frame per GIF frame; everything else produces a single
// full-canvas frame with disposal Keep.
func Load(path string) (*Media, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".gif" {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("decode gif %s: %w", path, err)
		}
		return fromGIF(g)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return fromImage(img, format), nil
}

// fromGIF converts a decoded GIF into raw patch frames. Delays arrive in
// 100ths of a second and leave in milliseconds; disposal bytes map onto
// the compositor's three actions (unspecified and none both mean keep).
func fromGIF(g *gif.GIF) (*Media, error) {
	if len(g.Image) == 0 {
		return nil, gifseq.ErrEmptySequence
	}

	frames := make([]gifseq.RawFrame, 0, len(g.Image))
	for i, p := range g.Image {
		raw := gifseq.RawFrame{
			Pix:  palettedToRGBA(p),
			W:    p.Rect.Dx(),
			H:    p.Rect.Dy(),
			Left: p.Rect.Min.X,
			Top:  p.Rect.Min.Y,
		}
		if i < len(g.Delay) {
			raw.DelayMS = g.Delay[i] * 10
		}
		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				raw.Disposal = gifseq.DisposalBackground
			case gif.DisposalPrevious:
				raw.Disposal = gifseq.DisposalPrevious
			default:
				raw.Disposal = gifseq.DisposalKeep
			}
		}
		frames = append(frames, raw)
	}

	w, h := g.Config.Width, g.Config.Height
	if w <= 0 || h <= 0 {
		w, h = gifseq.CanvasSize(frames)
	}
	return &Media{Frames: frames, W: w, H: h, Format: "gif"}, nil
}

// fromImage wraps a static image as a single synthetic frame. A zero
// delay is left in place; the compositor normalizes it.
func fromImage(img image.Image, format string) *Media {
	nrgba := imaging.Clone(img)
	w := nrgba.Rect.Dx()
	h := nrgba.Rect.Dy()
	pix := make([]uint8, len(nrgba.Pix))
	copy(pix, nrgba.Pix)
	return &Media{
		Frames: []gifseq.RawFrame{{
			Pix:      pix,
			W:        w,
			H:        h,
			Disposal: gifseq.DisposalKeep,
		}},
		W:      w,
		H:      h,
		Format: format,
	}
}

// palettedToRGBA expands a paletted patch to straight-alpha RGBA bytes.
// The transparent index carries alpha 0, which the compositor treats as
// "leave the canvas pixel alone".
func palettedToRGBA(p *image.Paletted) []uint8 {
	w := p.Rect.Dx()
	h := p.Rect.Dy()

	// Precompute the palette as NRGBA to avoid a color model conversion
	// per pixel.
	lut := make([][4]uint8, len(p.Palette))
	for i, c := range p.Palette {
		r, g, b, a := c.RGBA()
		if a == 0 {
			lut[i] = [4]uint8{0, 0, 0, 0}
			continue
		}
		// Un-premultiply the 16-bit values from RGBA().
		lut[i] = [4]uint8{
			uint8((r * 0xffff / a) >> 8),
			uint8((g * 0xffff / a) >> 8),
			uint8((b * 0xffff / a) >> 8),
			uint8(a >> 8),
		}
	}

	out := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := p.Pix[y*p.Stride+x]
			c := lut[idx]
			o := (y*w + x) * 4
			out[o] = c[0]
			out[o+1] = c[1]
			out[o+2] = c[2]
			out[o+3] = c[3]
		}
	}
	return out
}
