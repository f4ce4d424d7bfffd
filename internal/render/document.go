package render

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AnyUserName/gifscii-cli/internal/pipeline"
	"github.com/AnyUserName/gifscii-cli/internal/raster"
)

// SupportedDocumentVersion is the current schema version.
const SupportedDocumentVersion = 1

// Document is the top-level output of a conversion: the settings that
// produced it plus one entry per frame.
type Document struct {
	Version     int          `json:"version"`
	GeneratedAt string       `json:"generated_at"`
	Source      string       `json:"source"`
	Charset     string       `json:"charset"`
	ColorMode   string       `json:"color_mode"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Frames      []FrameEntry `json:"frames"`
	Stats       Stats        `json:"stats"`
}

// FrameEntry is one converted frame.
type FrameEntry struct {
	Lines   []string       `json:"lines"`
	Colors  [][]raster.RGB `json:"colors,omitempty"` // row-major [r,g,b] per cell
	DelayMS int            `json:"delay_ms"`
}

// Stats aggregates conversion metrics.
type Stats struct {
	FrameCount      int `json:"frame_count"`
	TotalDurationMS int `json:"total_duration_ms"`
}

// NewDocument assembles a document from processed frames.
func NewDocument(source string, s pipeline.Settings, frames []pipeline.ProcessedFrame) *Document {
	d := &Document{
		Version:     SupportedDocumentVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      source,
		Charset:     s.Charset,
		ColorMode:   string(s.ColorMode),
		Width:       s.Width,
		Height:      s.Height,
		Frames:      make([]FrameEntry, 0, len(frames)),
	}
	for _, f := range frames {
		d.Frames = append(d.Frames, FrameEntry{
			Lines:   f.Lines,
			Colors:  f.Colors,
			DelayMS: f.DelayMS,
		})
	}
	d.ComputeStats()
	return d
}

// ComputeStats recalculates aggregate statistics from frames.
func (d *Document) ComputeStats() {
	var s Stats
	s.FrameCount = len(d.Frames)
	for _, f := range d.Frames {
		s.TotalDurationMS += f.DelayMS
	}
	d.Stats = s
}

// WriteJSON serializes the document to a JSON file.
func WriteJSON(d *Document, path string) error {
	d.ComputeStats()

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
