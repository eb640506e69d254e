//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// HUD renders the header bar above the playground: the title, the color
// action button and a status readout.
type HUD struct {
	title    string
	label    string
	width    int
	button   image.Rectangle
	hover    bool
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD whose button triggers the given color action.
func NewHUD(title string, mode entity.ColorActionMode) *HUD {
	return &HUD{title: title, label: mode.Label()}
}

// Update lays the header out for the current screen width, caches snap and
// reports whether the button was clicked this tick.
func (h *HUD) Update(width int, snap core.ParameterSnapshot) bool {
	if h == nil {
		return false
	}
	if width != h.width {
		h.width = width
		h.button = ButtonRect(width, h.label)
	}
	h.snapshot = snap

	mx, my := ebiten.CursorPosition()
	h.hover = pointInRect(mx, my, h.button)
	return h.hover && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw paints the header across the top of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	face := basicfont.Face7x13
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), HeaderHeight, color.RGBA{R: 40, G: 42, B: 54, A: 255}, false)
	vector.StrokeLine(screen, 0, HeaderHeight-0.5, float32(h.width), HeaderHeight-0.5, 1, color.RGBA{R: 68, G: 71, B: 90, A: 255}, false)

	text.Draw(screen, h.title, face, panelPadding, headerBaseline, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	titleWidth := text.BoundString(face, h.title).Dx()
	status := StatusLine(h.snapshot)
	statusX := panelPadding + titleWidth + 3*panelPadding
	if statusX+text.BoundString(face, status).Dx() < h.button.Min.X-panelPadding {
		text.Draw(screen, status, face, statusX, headerBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	h.drawButton(screen, face)
}

func (h *HUD) drawButton(screen *ebiten.Image, face *basicfont.Face) {
	rect := h.button
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	if h.hover {
		bg = color.RGBA{R: 80, G: 84, B: 100, A: 255}
	}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	bounds := text.BoundString(face, h.label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, h.label, face, x, y, fg)
}
