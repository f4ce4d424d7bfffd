package pipeline

import (
	"fmt"
	"strconv"

	"github.com/AnyUserName/gifscii-cli/internal/charset"
	"github.com/AnyUserName/gifscii-cli/internal/hasher"
	"github.com/AnyUserName/gifscii-cli/internal/raster"
	"github.com/AnyUserName/gifscii-cli/internal/term"
)

// Settings holds every knob that affects frame output.
type Settings struct {
	Charset    string
	ColorMode  term.Mode
	Dither     bool
	Brightness int // -100 to 100, 0 = neutral
	Contrast   int // 0 to 200, 100 = neutral
	Invert     bool
	Width      int // character cells
	Height     int // character cells
}

// Defaults returns the default conversion settings.
func Defaults() Settings {
	return Settings{
		Charset:    "simple",
		ColorMode:  term.ModeTruecolor,
		Dither:     false,
		Brightness: 0,
		Contrast:   100,
		Invert:     false,
		Width:      80,
		Height:     24,
	}
}

// Validate checks the fields that would otherwise fail mid-pipeline, so
// callers get a single upfront error instead of a partial run.
func (s Settings) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: %dx%d cells", raster.ErrInvalidDimensions, s.Width, s.Height)
	}
	if _, err := charset.Lookup(s.Charset); err != nil {
		return err
	}
	if !term.ValidMode(string(s.ColorMode)) {
		return fmt.Errorf("invalid color mode %q (known: none, indexed, truecolor)", s.ColorMode)
	}
	return nil
}

// Hash is a deterministic fingerprint of all output-affecting fields,
// used for cache keying.
func (s Settings) Hash() string {
	return hasher.FieldsHash(12,
		s.Charset,
		string(s.ColorMode),
		strconv.FormatBool(s.Dither),
		strconv.Itoa(s.Brightness),
		strconv.Itoa(s.Contrast),
		strconv.FormatBool(s.Invert),
		strconv.Itoa(s.Width),
		strconv.Itoa(s.Height),
	)
}
