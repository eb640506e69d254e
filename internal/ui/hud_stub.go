//go:build !ebiten

package ui

import (
	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string, entity.ColorActionMode) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, core.ParameterSnapshot) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
