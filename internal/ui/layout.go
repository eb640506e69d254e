package ui

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// HeaderHeight is the height of the header bar in screen pixels. The
// playground starts right below it.
const HeaderHeight = 40

const (
	panelPadding   = 12
	buttonPadX     = 10
	buttonHeight   = 24
	headerBaseline = 25
)

// ButtonRect returns the header button rectangle for a screen of the given
// width. The button is right-aligned and sized to its label.
func ButtonRect(width int, label string) image.Rectangle {
	textWidth := font.MeasureString(basicfont.Face7x13, label).Ceil()
	w := textWidth + 2*buttonPadX
	top := (HeaderHeight - buttonHeight) / 2
	right := max(width-panelPadding, w)
	return image.Rect(right-w, top, right, top+buttonHeight)
}

// StatusLine formats the counters of a parameter snapshot for the header.
func StatusLine(snap core.ParameterSnapshot) string {
	var parts []string
	for _, key := range []string{"frames", "collisions", "mode"} {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(p.Label), p.Value))
		}
	}
	if p, ok := snap.Lookup("paused"); ok && p.Value == "true" {
		parts = append(parts, "PAUSED")
	}
	return strings.Join(parts, "  ")
}

// vectorSeconds is how far ahead the velocity overlay projects a box.
const vectorSeconds = 0.25

// VelocitySegment returns the segment from the box center to where the center
// will be after vectorSeconds of unobstructed motion.
func VelocitySegment(box entity.Box) (x0, y0, x1, y1 float64) {
	x0 = box.X + box.Size/2
	y0 = box.Y + box.Size/2
	return x0, y0, x0 + box.DX*vectorSeconds, y0 + box.DY*vectorSeconds
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
