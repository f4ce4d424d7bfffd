// Package charset holds the character ramp presets and luminance→rune
// mapping. Every ramp is ordered strictly dark→light.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AnyUserName/gifscii-cli/internal/raster"
)

// ErrUnknownCharset is returned by Lookup for unregistered names.
var ErrUnknownCharset = errors.New("charset: unknown charset")

// Charset is a named character ramp. Braille sets don't map through the
// ramp; they go through the braille dot encoder instead and keep a
// two-rune ramp only for level counting.
type Charset struct {
	Name    string
	Runes   []rune
	Braille bool
}

const (
	simpleChars = " .:-=+*#%@"

	detailedChars = " .`'^\",:;Il!i><~+_-?][}{1)(|\\/" +
		"tfjrxnuvczXYUJCLQ0OZmwqpdbkhao" +
		"*#MW&8%B@$"

	// Unicode block elements, bottom-up fill.
	blockChars = " ▁▂▃▄▅▆▇█"
)

var charsets = map[string]Charset{
	"simple":   {Name: "simple", Runes: []rune(simpleChars)},
	"detailed": {Name: "detailed", Runes: []rune(detailedChars)},
	"blocks":   {Name: "blocks", Runes: []rune(blockChars)},
	"braille":  {Name: "braille", Runes: []rune("⠀⣿"), Braille: true},
}

// nameOrder keeps listing output stable.
var nameOrder = []string{"simple", "detailed", "blocks", "braille"}

// Lookup returns the charset registered under name.
func Lookup(name string) (Charset, error) {
	cs, ok := charsets[strings.ToLower(name)]
	if !ok {
		return Charset{}, fmt.Errorf("%w: %q (known: %s)",
			ErrUnknownCharset, name, strings.Join(nameOrder, ", "))
	}
	return cs, nil
}

// Names returns all registered charset names in stable order.
func Names() []string {
	out := make([]string, len(nameOrder))
	copy(out, nameOrder)
	return out
}

// Levels is the number of quantization levels the ramp supports.
// Braille is binary regardless of ramp content.
func (c Charset) Levels() int {
	if c.Braille {
		return 2
	}
	return len(c.Runes)
}

// Map renders a luminance grid as text lines, one rune per cell:
// idx = floor(v * (len-1)), clamped to the ramp.
func (c Charset) Map(g *raster.Grid) []string {
	n := len(c.Runes)
	lines := make([]string, g.H)
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		b.Reset()
		b.Grow(g.W * 3)
		for x := 0; x < g.W; x++ {
			idx := int(g.At(x, y) * float64(n-1))
			if idx < 0 {
				idx = 0
			} else if idx > n-1 {
				idx = n - 1
			}
			b.WriteRune(c.Runes[idx])
		}
		lines[y] = b.String()
	}
	return lines
}
