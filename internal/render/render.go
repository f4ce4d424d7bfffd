// Package render serializes conversion output. Three renderers cover
// the consumer surface: plain text, ANSI-colored text for terminals,
// and a JSON document for downstream tooling.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AnyUserName/gifscii-cli/internal/term"
)

// Renderer writes a document in one output format.
type Renderer interface {
	// Format returns the output format name ("text", "ansi", "json").
	Format() string

	// Render writes the document to w.
	Render(w io.Writer, doc *Document) error
}

var renderers = map[string]Renderer{
	"text": TextRenderer{},
	"ansi": ANSIRenderer{},
	"json": JSONRenderer{},
}

// formatOrder keeps listings stable.
var formatOrder = []string{"text", "ansi", "json"}

// Lookup returns a renderer by format name.
func Lookup(format string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (known: %s)",
			format, strings.Join(formatOrder, ", "))
	}
	return r, nil
}

// Formats returns all renderer format names in stable order.
func Formats() []string {
	out := make([]string, len(formatOrder))
	copy(out, formatOrder)
	return out
}

// TextRenderer writes plain character lines, frames separated by a
// blank line.
type TextRenderer struct{}

func (TextRenderer) Format() string { return "text" }

func (TextRenderer) Render(w io.Writer, doc *Document) error {
	for i, f := range doc.Frames {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for _, line := range f.Lines {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// ANSIRenderer writes lines with per-cell color escapes using the
// document's color mode. With color mode "none" it degrades to plain
// text output.
type ANSIRenderer struct{}

func (ANSIRenderer) Format() string { return "ansi" }

func (ANSIRenderer) Render(w io.Writer, doc *Document) error {
	mode := term.Mode(doc.ColorMode)
	for i, f := range doc.Frames {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for row, line := range f.Lines {
			out := line
			if f.Colors != nil && row < len(f.Colors) {
				out = term.ColorizeLine(line, f.Colors[row], mode)
			}
			if _, err := io.WriteString(w, out+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSONRenderer writes the full document as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Format() string { return "json" }

func (JSONRenderer) Render(w io.Writer, doc *Document) error {
	doc.ComputeStats()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
