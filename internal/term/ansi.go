// Package term maps sampled cell colors to ANSI escape sequences.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/AnyUserName/gifscii-cli/internal/raster"
)

// Mode selects how per-cell color is emitted.
type Mode string

const (
	ModeNone      Mode = "none"
	ModeIndexed   Mode = "indexed" // ANSI 256-color
	ModeTruecolor Mode = "truecolor"
)

// Reset clears all SGR attributes.
const Reset = "\x1b[0m"

// ValidMode reports whether s names a known color mode.
func ValidMode(s string) bool {
	switch Mode(s) {
	case ModeNone, ModeIndexed, ModeTruecolor:
		return true
	}
	return false
}

// Index256 maps an RGB color to the nearest ANSI 256-color index, using
// the 6×6×6 cube (16-231) and the grayscale ramp (232-255). Colors with
// channels within 10 of each other go to the grayscale ramp, which has
// finer steps than the cube diagonal.
func Index256(r, g, b uint8) int {
	ri, gi, bi := int(r), int(g), int(b)
	if abs(ri-gi) < 10 && abs(gi-bi) < 10 {
		gray := (ri + gi + bi) / 3
		if gray < 8 {
			return 16
		}
		if gray > 248 {
			return 231
		}
		return 232 + int(math.Round(float64(gray-8)/247*23))
	}
	cr := int(math.Round(float64(ri) / 255 * 5))
	cg := int(math.Round(float64(gi) / 255 * 5))
	cb := int(math.Round(float64(bi) / 255 * 5))
	return 16 + 36*cr + 6*cg + cb
}

// ForegroundIndexed returns the 256-color foreground escape.
func ForegroundIndexed(idx int) string {
	return fmt.Sprintf("\x1b[38;5;%dm", idx)
}

// ForegroundTrue returns the 24-bit foreground escape.
func ForegroundTrue(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// ColorizeLine interleaves color escapes with the line's runes, one color
// per cell. Identical consecutive escapes are emitted once, and a single
// reset closes the line. Runes beyond the color row are left uncolored.
func ColorizeLine(line string, colors []raster.RGB, mode Mode) string {
	if mode == ModeNone || len(colors) == 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) * 4)
	prev := ""
	i := 0
	for _, ch := range line {
		if i < len(colors) {
			c := colors[i]
			var esc string
			if mode == ModeTruecolor {
				esc = ForegroundTrue(c[0], c[1], c[2])
			} else {
				esc = ForegroundIndexed(Index256(c[0], c[1], c[2]))
			}
			if esc != prev {
				b.WriteString(esc)
				prev = esc
			}
		}
		b.WriteRune(ch)
		i++
	}
	if prev != "" {
		b.WriteString(Reset)
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
