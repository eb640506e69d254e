package render

import (
	"image/color"
	"math"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// Background is the playground fill behind the boxes.
var Background = color.RGBA{R: 18, G: 18, B: 24, A: 255}

// Rasterize paints set into grid, one cell per cellW x cellH pixels. Cell
// values are 0 for empty space and i+1 for the box at index i; later boxes
// cover earlier ones. A cell is covered when the box overlaps any part of it.
func Rasterize(grid *core.ByteGrid, set entity.Set, cellW, cellH float64) {
	grid.Clear()
	if cellW <= 0 || cellH <= 0 {
		return
	}
	for i, box := range set {
		if i >= math.MaxUint8 {
			break
		}
		x0 := int(math.Floor(box.X / cellW))
		y0 := int(math.Floor(box.Y / cellH))
		x1 := int(math.Ceil((box.X + box.Size) / cellW))
		y1 := int(math.Ceil((box.Y + box.Size) / cellH))
		grid.FillRect(x0, y0, x1, y1, uint8(i+1))
	}
}

// Palette maps raster values to colors: entry 0 is bg, entry i+1 is the color
// of box i.
func Palette(set entity.Set, bg color.RGBA) []color.RGBA {
	palette := make([]color.RGBA, 0, len(set)+1)
	palette = append(palette, bg)
	for _, box := range set {
		palette = append(palette, box.Color)
	}
	return palette
}
