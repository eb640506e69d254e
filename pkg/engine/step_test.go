package engine

import (
	"image/color"
	"math"
	"testing"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

func TestAdvanceLeftBounce(t *testing.T) {
	set := entity.Set{{ID: 0, Size: 100, X: 0, Y: 200, DX: -50, DY: 60}}
	next := Advance(set, core.Bounds{W: 500, H: 1000}, 1, nil)

	if next[0].X != 0 || next[0].DX != 50 {
		t.Fatalf("left bounce = x %v dx %v, want x 0 dx 50", next[0].X, next[0].DX)
	}
	if next[0].Y != 260 || next[0].DY != 60 {
		t.Fatalf("y axis must be unaffected: y %v dy %v", next[0].Y, next[0].DY)
	}
}

func TestAdvanceRightBounce(t *testing.T) {
	set := entity.Set{{ID: 0, Size: 100, X: 450, Y: 200, DX: 80, DY: 60}}
	next := Advance(set, core.Bounds{W: 500, H: 1000}, 0.1, nil)

	if next[0].X != 400 || next[0].DX != -80 {
		t.Fatalf("right bounce = x %v dx %v, want x 400 dx -80", next[0].X, next[0].DX)
	}
	if set[0].X != 450 || set[0].DX != 80 {
		t.Fatal("Advance mutated its input")
	}
}

func TestAdvanceCornerHit(t *testing.T) {
	set := entity.Set{{ID: 0, Size: 50, X: 445, Y: 2, DX: 100, DY: -100}}
	next, hits := step(set, core.Bounds{W: 500, H: 500}, 0.1, nil)

	if next[0].X != 450 || next[0].DX != -100 || next[0].Y != 0 || next[0].DY != 100 {
		t.Fatalf("corner hit produced %+v", next[0])
	}
	if len(hits) != 1 || !hits[0].X || !hits[0].Y {
		t.Fatalf("expected one collision on both axes, got %+v", hits)
	}
}

func TestAdvanceRecolorsOnlyColliders(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	set := entity.Set{
		{ID: 0, Size: 10, X: 1, Y: 50, DX: -60, DY: 60, Color: blue},
		{ID: 1, Size: 10, X: 50, Y: 50, DX: 60, DY: 60, Color: blue},
	}
	next := Advance(set, core.Bounds{W: 100, H: 100}, 0.05, func() color.RGBA { return red })
	if next[0].Color != red {
		t.Fatalf("colliding box kept color %+v", next[0].Color)
	}
	if next[1].Color != blue {
		t.Fatalf("free box was recolored to %+v", next[1].Color)
	}
}

func TestAdvanceOversizedBoxDoesNotOscillate(t *testing.T) {
	set := entity.Set{{ID: 0, Size: 130, X: 0, Y: 10, DX: -70, DY: 70}}
	b := core.Bounds{W: 100, H: 400}

	set, hits := step(set, b, 0.016, nil)
	if set[0].X != 0 || set[0].DX != 70 || len(hits) != 1 {
		t.Fatalf("first pinned frame = %+v hits %v", set[0], hits)
	}
	for i := 0; i < 20; i++ {
		set, hits = step(set, b, 0.016, nil)
		if set[0].X != 0 || set[0].DX != 70 {
			t.Fatalf("frame %d: pinned box moved or flipped: %+v", i, set[0])
		}
		if len(hits) != 0 {
			t.Fatalf("frame %d: pinned box reported collision", i)
		}
	}
}

func TestAdvanceInvariantsOverManyFrames(t *testing.T) {
	rng := core.NewRNG(2024)
	b := core.Bounds{W: 1280, H: 720}
	set := entity.CreateInitialBoxes(b, entity.DefaultParams(), rng)
	initial := set.Clone()

	sizes := []core.Bounds{{W: 1280, H: 720}, {W: 300, H: 90}, {W: 640, H: 480}, {W: 50, H: 0}, {W: 1920, H: 1080}}
	for frame := 0; frame < 5000; frame++ {
		if frame%700 == 0 {
			b = sizes[(frame/700)%len(sizes)]
			set = ClampToBounds(set, b)
		}
		dt := 0.05 * rng.Float64()
		prev := set
		set = Advance(set, b, dt, nil)

		for i, box := range set {
			maxX, maxY := b.Room(box.Size)
			if box.X < 0 || box.X > maxX || box.Y < 0 || box.Y > maxY {
				t.Fatalf("frame %d box %d escaped: (%v,%v) size %v bounds %+v", frame, i, box.X, box.Y, box.Size, b)
			}
			if math.Abs(box.DX) != math.Abs(initial[i].DX) || math.Abs(box.DY) != math.Abs(initial[i].DY) {
				t.Fatalf("frame %d box %d speed changed", frame, i)
			}
			if box.ID != initial[i].ID || box.Size != initial[i].Size {
				t.Fatalf("frame %d box %d identity changed", frame, i)
			}
			if box.DX != prev[i].DX {
				roomX, _ := b.Room(box.Size)
				if box.X != 0 && box.X != roomX {
					t.Fatalf("frame %d box %d flipped dx away from an x edge", frame, i)
				}
			}
			if box.DY != prev[i].DY {
				_, roomY := b.Room(box.Size)
				if box.Y != 0 && box.Y != roomY {
					t.Fatalf("frame %d box %d flipped dy away from a y edge", frame, i)
				}
			}
		}
	}
}
