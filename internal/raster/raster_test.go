package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResize_Dimensions(t *testing.T) {
	src := solid(64, 48, color.NRGBA{200, 100, 50, 255})
	out, err := Resize(src, 8, 3)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rect.Dx() != 8 || out.Rect.Dy() != 3 {
		t.Errorf("got %dx%d, want 8x3", out.Rect.Dx(), out.Rect.Dy())
	}
}

func TestResize_InvalidDimensions(t *testing.T) {
	src := solid(4, 4, color.NRGBA{A: 255})
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}} {
		_, err := Resize(src, dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%v: want ErrInvalidDimensions, got %v", dims, err)
		}
	}
}

// Lanczos downscale of a uniform image stays uniform: a quick check
// that the filter isn't inventing detail.
func TestResize_UniformStaysUniform(t *testing.T) {
	src := solid(40, 40, color.NRGBA{130, 60, 200, 255})
	out, err := Resize(src, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := out.PixOffset(x, y)
			r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
			if delta(r, 130) > 2 || delta(g, 60) > 2 || delta(b, 200) > 2 {
				t.Fatalf("(%d,%d): got %d,%d,%d", x, y, r, g, b)
			}
		}
	}
}

func delta(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestSampleColors(t *testing.T) {
	src := solid(60, 30, color.NRGBA{10, 20, 30, 255})
	colors, err := SampleColors(src, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 || len(colors[0]) != 6 {
		t.Fatalf("grid: got %dx%d, want 3 rows x 6 cols", len(colors), len(colors[0]))
	}
	c := colors[1][2]
	if delta(c[0], 10) > 2 || delta(c[1], 20) > 2 || delta(c[2], 30) > 2 {
		t.Errorf("got %v", c)
	}
}

func TestSampleBrailleColors(t *testing.T) {
	src := solid(40, 40, color.NRGBA{100, 150, 250, 255})
	colors, err := SampleBrailleColors(src, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 2 || len(colors[0]) != 5 {
		t.Fatalf("grid: got %dx%d, want 2 rows x 5 cols", len(colors), len(colors[0]))
	}
	c := colors[0][0]
	if delta(c[0], 100) > 2 || delta(c[1], 150) > 2 || delta(c[2], 250) > 2 {
		t.Errorf("block average: got %v", c)
	}
}

func TestSampleColors_InvalidDimensions(t *testing.T) {
	src := solid(4, 4, color.NRGBA{A: 255})
	if _, err := SampleColors(src, 0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("want ErrInvalidDimensions, got %v", err)
	}
	if _, err := SampleBrailleColors(src, 3, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("want ErrInvalidDimensions, got %v", err)
	}
}

func TestInvertColors(t *testing.T) {
	colors := [][]RGB{{{0, 100, 255}}}
	InvertColors(colors)
	if colors[0][0] != (RGB{255, 155, 0}) {
		t.Errorf("got %v", colors[0][0])
	}
}

func TestGridClampAndClone(t *testing.T) {
	g := NewGrid(2, 2)
	g.Pix = []float64{-0.5, 0.5, 1.5, 1}

	c := g.Clone()
	g.Clamp()

	want := []float64{0, 0.5, 1, 1}
	for i, v := range g.Pix {
		if v != want[i] {
			t.Errorf("clamp pix %d: got %v, want %v", i, v, want[i])
		}
	}
	// Clone is independent of the original.
	if c.Pix[0] != -0.5 {
		t.Error("clone shares storage with original")
	}
}
