package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/gifscii-cli/internal/pipeline"
	"github.com/AnyUserName/gifscii-cli/internal/raster"
	"github.com/AnyUserName/gifscii-cli/internal/term"
)

func sampleDoc() *Document {
	s := pipeline.Defaults()
	s.Width = 2
	s.Height = 2
	frames := []pipeline.ProcessedFrame{
		{
			Index:   0,
			Lines:   []string{"@ ", " @"},
			Colors:  [][]raster.RGB{{{255, 0, 0}, {0, 255, 0}}, {{0, 0, 255}, {9, 9, 9}}},
			DelayMS: 40,
		},
		{
			Index:   1,
			Lines:   []string{"..", ".."},
			DelayMS: 60,
		},
	}
	return NewDocument("in.gif", s, frames)
}

func TestDocumentRoundtrip(t *testing.T) {
	doc := sampleDoc()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	if err := WriteJSON(doc, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var d2 Document
	if err := json.Unmarshal(data, &d2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if d2.Version != SupportedDocumentVersion {
		t.Errorf("version: got %d", d2.Version)
	}
	if d2.Source != "in.gif" {
		t.Errorf("source: got %q", d2.Source)
	}
	if len(d2.Frames) != 2 {
		t.Fatalf("frames: got %d", len(d2.Frames))
	}
	if d2.Frames[0].Lines[0] != "@ " {
		t.Errorf("lines: got %q", d2.Frames[0].Lines[0])
	}
	if d2.Frames[0].Colors[0][0] != (raster.RGB{255, 0, 0}) {
		t.Errorf("colors: got %v", d2.Frames[0].Colors[0][0])
	}
	if d2.Frames[1].Colors != nil {
		t.Error("colorless frame must omit colors")
	}
	if d2.Stats.FrameCount != 2 || d2.Stats.TotalDurationMS != 100 {
		t.Errorf("stats: %+v", d2.Stats)
	}
}

func TestDocumentIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2026-01-01T00:00:00Z",
		"source": "x.gif",
		"charset": "simple",
		"color_mode": "none",
		"width": 2, "height": 1,
		"future_field": true,
		"frames": [{"lines": ["ab"], "delay_ms": 100, "new_field": 1}],
		"stats": {"frame_count": 1, "total_duration_ms": 100, "new_stat": 2}
	}`
	var d Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if d.Frames[0].Lines[0] != "ab" {
		t.Error("frames not parsed")
	}
}

func TestLookup(t *testing.T) {
	for _, f := range Formats() {
		r, err := Lookup(f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if r.Format() != f {
			t.Errorf("format: got %q, want %q", r.Format(), f)
		}
	}
	if _, err := Lookup("yaml"); err == nil {
		t.Error("unknown format must error")
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (TextRenderer{}).Render(&buf, sampleDoc()); err != nil {
		t.Fatal(err)
	}
	want := "@ \n @\n\n..\n..\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestANSIRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (ANSIRenderer{}).Render(&buf, sampleDoc()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Error("missing truecolor escape")
	}
	if !strings.Contains(out, term.Reset) {
		t.Error("missing reset")
	}
	// Second frame has no colors; its lines come through plain.
	if !strings.Contains(out, "..\n..\n") {
		t.Error("colorless frame mangled")
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONRenderer{}).Render(&buf, sampleDoc()); err != nil {
		t.Fatal(err)
	}
	var d Document
	if err := json.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if d.Stats.FrameCount != 2 {
		t.Errorf("stats: %+v", d.Stats)
	}
}
