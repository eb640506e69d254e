package entity

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"floatbox/pkg/core"
)

const (
	colorSaturation = 0.8
	colorLightness  = 0.6
)

// ResetColor is the fixed value applied by the reset-all action.
var ResetColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// ColorActionMode selects what the user-triggered color action does.
type ColorActionMode string

const (
	// ModeResetAll sets every box to ResetColor.
	ModeResetAll ColorActionMode = "reset-all"
	// ModeRandomizeOne recolors one randomly chosen box.
	ModeRandomizeOne ColorActionMode = "randomize-one"
)

// ParseColorActionMode validates s as a ColorActionMode.
func ParseColorActionMode(s string) (ColorActionMode, error) {
	switch m := ColorActionMode(s); m {
	case ModeResetAll, ModeRandomizeOne:
		return m, nil
	}
	return "", fmt.Errorf("unknown color action mode %q (want %q or %q)", s, ModeResetAll, ModeRandomizeOne)
}

// Label returns a short button caption for the mode.
func (m ColorActionMode) Label() string {
	if m == ModeRandomizeOne {
		return "Randomize One"
	}
	return "Reset Color"
}

// HueColor converts a hue in degrees to the palette's fixed saturation and
// lightness.
func HueColor(hue int) color.RGBA {
	c := colorful.Hsl(float64(hue), colorSaturation, colorLightness).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RandomColor draws a hue uniformly from [0, 360).
func RandomColor(rng *core.RNG) color.RGBA {
	return HueColor(rng.IntN(360))
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// ResetAll returns a copy of set with every color replaced by ResetColor.
func ResetAll(set Set) Set {
	next := set.Clone()
	for i := range next {
		next[i].Color = ResetColor
	}
	return next
}

// RandomizeOne returns a copy of set in which exactly one uniformly chosen box
// has a new random color different from its previous one.
func RandomizeOne(set Set, rng *core.RNG) Set {
	next := set.Clone()
	if len(next) == 0 {
		return next
	}
	i := rng.IntN(len(next))
	hue := rng.IntN(360)
	c := HueColor(hue)
	if c == next[i].Color {
		c = HueColor((hue + 1 + rng.IntN(359)) % 360)
	}
	next[i].Color = c
	return next
}

// ApplyColorAction dispatches to the action selected by mode.
func ApplyColorAction(set Set, mode ColorActionMode, rng *core.RNG) Set {
	if mode == ModeRandomizeOne {
		return RandomizeOne(set, rng)
	}
	return ResetAll(set)
}
