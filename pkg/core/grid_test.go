package core

import "testing"

func TestByteGridFillRectClips(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.FillRect(-2, 1, 2, 10, 7)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := uint8(0)
			if x < 2 && y >= 1 {
				want = 7
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if g.At(-1, 0) != 0 || g.At(4, 0) != 0 {
		t.Fatal("out of range reads must return 0")
	}
}

func TestByteGridResize(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.FillRect(0, 0, 2, 2, 1)
	g.Resize(2, 2)
	for _, c := range g.Cells() {
		if c != 0 {
			t.Fatal("same-size resize must clear the grid")
		}
	}
	g.Resize(5, 0)
	if g.W != 5 || g.H != 1 || len(g.Cells()) != 5 {
		t.Fatalf("unexpected grid after resize: %dx%d len=%d", g.W, g.H, len(g.Cells()))
	}
}
