package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// FillRect sets every cell in [x0, x1) x [y0, y1) to v, clipped to the grid.
func (g *ByteGrid) FillRect(x0, y0, x1, y1 int, v uint8) {
	x0, x1 = max(x0, 0), min(x1, g.W)
	y0, y1 = max(y0, 0), min(y1, g.H)
	for y := y0; y < y1; y++ {
		row := y * g.W
		for x := x0; x < x1; x++ {
			g.data[row+x] = v
		}
	}
}

// Resize reallocates the grid when the dimensions change and clears it.
func (g *ByteGrid) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == g.W && h == g.H {
		g.Clear()
		return
	}
	g.W, g.H = w, h
	g.data = make([]uint8, w*h)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
