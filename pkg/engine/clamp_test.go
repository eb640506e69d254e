package engine

import (
	"slices"
	"testing"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

func TestClampToBoundsResizeScenario(t *testing.T) {
	set := entity.Set{{ID: 0, Size: 110, X: 780, Y: 100, DX: 90, DY: -90}}
	set = ClampToBounds(set, core.Bounds{W: 900, H: 600})
	if set[0].X != 780 {
		t.Fatalf("box already inside must not move, got x %v", set[0].X)
	}

	set = ClampToBounds(set, core.Bounds{W: 820, H: 600})
	if set[0].X != 710 {
		t.Fatalf("x after shrink = %v, want 710", set[0].X)
	}
	if set[0].DX != 90 || set[0].DY != -90 || set[0].Y != 100 {
		t.Fatalf("clamp changed more than x: %+v", set[0])
	}
}

func TestClampToBoundsIdempotent(t *testing.T) {
	rng := core.NewRNG(8)
	set := entity.CreateInitialBoxes(core.Bounds{W: 1600, H: 1200}, entity.DefaultParams(), rng)
	for _, b := range []core.Bounds{{W: 400, H: 300}, {W: 0, H: 0}, {W: 2000, H: 90}} {
		once := ClampToBounds(set, b)
		twice := ClampToBounds(once, b)
		if !slices.Equal(once, twice) {
			t.Fatalf("clamp not idempotent for %+v", b)
		}
		for i, box := range once {
			maxX, maxY := b.Room(box.Size)
			if box.X > maxX || box.Y > maxY || box.X < 0 || box.Y < 0 {
				t.Fatalf("box %d outside %+v after clamp: %+v", i, b, box)
			}
			if box.Color != set[i].Color || box.DX != set[i].DX || box.DY != set[i].DY {
				t.Fatalf("box %d color or velocity changed", i)
			}
		}
	}
}
