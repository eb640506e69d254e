package render

import (
	"image/color"
	"testing"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

func TestRasterizeCoverageAndOrder(t *testing.T) {
	set := entity.Set{
		{ID: 0, Size: 20, X: 0, Y: 0},
		{ID: 1, Size: 10, X: 15, Y: 5},
	}
	grid := core.NewByteGrid(4, 4)
	Rasterize(grid, set, 10, 10)

	want := [][]uint8{
		{1, 2, 2, 0},
		{1, 2, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	for y := range want {
		for x := range want[y] {
			if got := grid.At(x, y); got != want[y][x] {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestImageUsesBoxColors(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	set := entity.Set{{ID: 0, Size: 2, X: 1, Y: 1, Color: red}}
	img := Image(set, core.Bounds{W: 4, H: 4}, Background)

	if got := img.RGBAAt(1, 1); got != red {
		t.Fatalf("box pixel = %+v, want red", got)
	}
	if got := img.RGBAAt(3, 3); got != Background {
		t.Fatalf("empty pixel = %+v, want background", got)
	}
	if got := img.RGBAAt(0, 0); got != Background {
		t.Fatalf("corner pixel = %+v, want background", got)
	}
}

func TestFillPaletteEmpty(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("expected cleared buffer, got %v", buf)
		}
	}
}
