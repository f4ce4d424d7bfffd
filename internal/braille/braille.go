// Package braille packs binary dot grids into Unicode braille characters.
//
// Each output rune covers a 2-wide × 4-tall block of dots. The Unicode
// braille block starts at U+2800 and assigns dots to mask bits as:
//
//	row 0: bit 0, bit 3
//	row 1: bit 1, bit 4
//	row 2: bit 2, bit 5
//	row 3: bit 6, bit 7
//
// The bottom row breaking the column pattern is a quirk of the standard
// (6-dot braille predates the 8-dot extension); deviating from it yields
// valid codepoints but visually wrong glyphs.
package braille

import (
	"strings"

	"github.com/AnyUserName/gifscii-cli/internal/raster"
)

const base = 0x2800

// dotBits[row][col] is the mask bit for that dot position.
var dotBits = [4][2]uint{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Bitmap is a binary dot grid, row-major.
type Bitmap struct {
	W, H int
	Bits []bool // len == W*H
}

// Threshold converts a luminance grid to dots: values above 0.5 are set.
func Threshold(g *raster.Grid) *Bitmap {
	bm := &Bitmap{W: g.W, H: g.H, Bits: make([]bool, len(g.Pix))}
	for i, v := range g.Pix {
		bm.Bits[i] = v > 0.5
	}
	return bm
}

// At reports the dot at (x, y); out-of-range positions read as unset,
// which is what the padding rule needs.
func (bm *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= bm.W || y >= bm.H {
		return false
	}
	return bm.Bits[y*bm.W+x]
}

// BlockRune packs one 4-row × 2-col block anchored at (x, y) into a
// braille rune.
func (bm *Bitmap) BlockRune(x, y int) rune {
	var mask uint
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			if bm.At(x+col, y+row) {
				mask |= 1 << dotBits[row][col]
			}
		}
	}
	return rune(base + mask)
}

// Encode renders the bitmap as lines of braille characters. Dimensions
// that aren't multiples of the 2×4 block size are padded with unset dots
// on the bottom/right only, so existing content keeps its coordinates.
func Encode(bm *Bitmap) []string {
	rows := (bm.H + 3) / 4
	cols := (bm.W + 1) / 2

	lines := make([]string, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		b.Grow(cols * 3) // braille runes are 3 bytes in UTF-8
		for col := 0; col < cols; col++ {
			b.WriteRune(bm.BlockRune(col*2, row*4))
		}
		lines[row] = b.String()
	}
	return lines
}
