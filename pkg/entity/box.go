// Package entity defines the moving boxes and how they are created.
package entity

import (
	"fmt"
	"image/color"
	"slices"

	"floatbox/pkg/core"
)

// Process defaults.
const (
	BoxCount = 7
	MinSpeed = 60.0
	MaxSpeed = 160.0

	FallbackWidth  = 800.0
	FallbackHeight = 600.0
	// ViewportHeightRatio is the share of the viewport height the playground
	// is assumed to occupy before it can be measured.
	ViewportHeightRatio = 0.8
)

// BoxSizes is the preset edge-length table, cycled by box id.
var BoxSizes = []float64{110, 70, 95, 130, 60, 85, 120}

// Box is a square that moves inside the container.
type Box struct {
	ID    int
	Size  float64
	Color color.RGBA
	X, Y  float64
	DX    float64
	DY    float64
}

// Set is the ordered collection of boxes, indexed by creation order.
// Operations on a Set return a new slice and leave the receiver untouched.
type Set []Box

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	return slices.Clone(s)
}

// Params controls how the initial boxes are generated.
type Params struct {
	Count    int
	Sizes    []float64
	MinSpeed float64
	MaxSpeed float64
}

// DefaultParams returns the standard box parameters.
func DefaultParams() Params {
	return Params{
		Count:    BoxCount,
		Sizes:    slices.Clone(BoxSizes),
		MinSpeed: MinSpeed,
		MaxSpeed: MaxSpeed,
	}
}

// Validate reports the first inconsistency in p.
func (p Params) Validate() error {
	if p.Count <= 0 {
		return fmt.Errorf("box count must be positive, got %d", p.Count)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("size table must not be empty")
	}
	for i, s := range p.Sizes {
		if s <= 0 {
			return fmt.Errorf("size %d must be positive, got %v", i, s)
		}
	}
	if p.MinSpeed <= 0 {
		return fmt.Errorf("min speed must be positive, got %v", p.MinSpeed)
	}
	if p.MaxSpeed < p.MinSpeed {
		return fmt.Errorf("max speed %v below min speed %v", p.MaxSpeed, p.MinSpeed)
	}
	return nil
}

// SizeFor returns the edge length assigned to id.
func (p Params) SizeFor(id int) float64 {
	sizes := p.Sizes
	if len(sizes) == 0 {
		sizes = BoxSizes
	}
	i := id % len(sizes)
	if i < 0 {
		i += len(sizes)
	}
	return sizes[i]
}

// EstimateBounds guesses the playground dimensions before the real container
// can be measured. Without a viewport the fallback 800x600 is used.
func EstimateBounds(viewportW, viewportH int, ok bool) core.Bounds {
	if !ok || viewportW <= 0 || viewportH <= 0 {
		return core.Bounds{W: FallbackWidth, H: FallbackHeight}
	}
	return core.Bounds{W: float64(viewportW), H: float64(viewportH) * ViewportHeightRatio}
}

// CreateBox builds box id with randomized speed, heading, position and color.
// The box always starts fully inside b, or flush with the origin when b is
// smaller than the box.
func CreateBox(id int, b core.Bounds, p Params, rng *core.RNG) Box {
	size := p.SizeFor(id)
	speed := rng.Range(p.MinSpeed, p.MaxSpeed)
	c := RandomColor(rng)
	roomX, roomY := b.Room(size)
	x := rng.Float64() * roomX
	y := rng.Float64() * roomY
	return Box{
		ID:    id,
		Size:  size,
		Color: c,
		X:     x,
		Y:     y,
		DX:    speed * rng.Sign(),
		DY:    speed * rng.Sign(),
	}
}

// CreateInitialBoxes creates boxes 0..p.Count-1 in order.
func CreateInitialBoxes(b core.Bounds, p Params, rng *core.RNG) Set {
	count := p.Count
	if count <= 0 {
		count = BoxCount
	}
	set := make(Set, count)
	for i := range set {
		set[i] = CreateBox(i, b, p, rng)
	}
	return set
}
