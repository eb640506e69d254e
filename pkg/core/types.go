package core

// Bounds describes the pixel dimensions of the container the boxes move in.
type Bounds struct {
	W float64
	H float64
}

// Valid reports whether both dimensions are non-negative.
func (b Bounds) Valid() bool {
	return b.W >= 0 && b.H >= 0
}

// Room returns how far a square of the given size can travel along each axis
// before touching the far edge. Negative room is reported as zero.
func (b Bounds) Room(size float64) (float64, float64) {
	return max(b.W-size, 0), max(b.H-size, 0)
}

// BoundsProvider exposes the current container dimensions on demand. The
// second return value is false while no measurement is available yet.
type BoundsProvider interface {
	Bounds() (Bounds, bool)
}

// BoundsFunc adapts a plain function to the BoundsProvider interface.
type BoundsFunc func() (Bounds, bool)

// Bounds calls f.
func (f BoundsFunc) Bounds() (Bounds, bool) { return f() }

// FixedBounds is a provider that always reports the same measurement.
func FixedBounds(b Bounds) BoundsProvider {
	return BoundsFunc(func() (Bounds, bool) { return b, true })
}
