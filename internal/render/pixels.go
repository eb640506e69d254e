package render

import (
	"image"
	"image/color"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image draws set at one pixel per container pixel on top of bg.
func Image(set entity.Set, b core.Bounds, bg color.RGBA) *image.RGBA {
	w, h := max(int(b.W), 1), max(int(b.H), 1)
	grid := core.NewByteGrid(w, h)
	Rasterize(grid, set, 1, 1)
	img := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	fillPaletteRGBA(img.Pix, grid.Cells(), Palette(set, bg))
	return img
}
