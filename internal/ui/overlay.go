//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floatbox/pkg/entity"
)

// Overlay draws optional debugging visuals on top of the boxes.
type Overlay struct {
	showVectors bool
	showLabels  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles the layers: 1 for velocity vectors, 2 for box labels.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVectors = !o.showVectors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLabels = !o.showLabels
	}
}

// Draw renders the enabled layers for set. offsetY is the screen position of
// the playground's top edge.
func (o *Overlay) Draw(screen *ebiten.Image, set entity.Set, offsetY float64) {
	if !o.showVectors && !o.showLabels {
		return
	}
	for _, box := range set {
		if o.showVectors {
			x0, y0, x1, y1 := VelocitySegment(box)
			vector.StrokeLine(screen, float32(x0), float32(y0+offsetY), float32(x1), float32(y1+offsetY), 2, color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)
		}
		if o.showLabels {
			label := fmt.Sprintf("#%d %s", box.ID, entity.Hex(box.Color))
			ebitenutil.DebugPrintAt(screen, label, int(box.X)+4, int(box.Y+offsetY)+4)
		}
	}
}
