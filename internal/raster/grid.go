package raster

// Grid is a 2D luminance buffer with values in [0, 1], stored row-major.
// Pipeline stages either mutate a grid in place or return a fresh one;
// grids are never shared across frames.
type Grid struct {
	W, H int
	Pix  []float64 // len == W*H
}

// NewGrid allocates a zeroed W×H grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Pix: make([]float64, w*h)}
}

func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.W+x]
}

func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.W+x] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Pix: make([]float64, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Clamp forces every value back into [0, 1].
func (g *Grid) Clamp() {
	for i, v := range g.Pix {
		if v < 0 {
			g.Pix[i] = 0
		} else if v > 1 {
			g.Pix[i] = 1
		}
	}
}
