package ui

import (
	"strings"
	"testing"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

func TestButtonRectRightAligned(t *testing.T) {
	r := ButtonRect(800, "Reset Color")
	if r.Max.X != 800-panelPadding {
		t.Fatalf("button right edge = %d", r.Max.X)
	}
	if r.Dx() != len("Reset Color")*7+2*buttonPadX {
		t.Fatalf("button width = %d", r.Dx())
	}
	if r.Min.Y < 0 || r.Max.Y > HeaderHeight {
		t.Fatalf("button %v outside header", r)
	}
	if !pointInRect(r.Min.X, r.Min.Y, r) || pointInRect(r.Max.X, r.Max.Y, r) {
		t.Fatal("pointInRect must include Min and exclude Max")
	}
}

func TestButtonRectNarrowScreen(t *testing.T) {
	r := ButtonRect(10, "Randomize One")
	if r.Min.X != 0 {
		t.Fatalf("button should start at the left edge, got %v", r)
	}
}

func TestStatusLine(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Counters",
		Params: []core.Parameter{
			{Key: "frames", Label: "Frames", Type: core.ParamTypeInt, Value: "12"},
			{Key: "collisions", Label: "Collisions", Type: core.ParamTypeInt, Value: "3"},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: "true"},
		},
	}}}
	got := StatusLine(snap)
	if got != "frames 12  collisions 3  PAUSED" {
		t.Fatalf("StatusLine = %q", got)
	}
	if StatusLine(core.ParameterSnapshot{}) != "" {
		t.Fatal("empty snapshot should give an empty status")
	}
	if strings.Contains(StatusLine(core.ParameterSnapshot{Groups: []core.ParameterGroup{{Params: []core.Parameter{{Key: "paused", Value: "false"}}}}}), "PAUSED") {
		t.Fatal("running engine reported as paused")
	}
}

func TestVelocitySegment(t *testing.T) {
	x0, y0, x1, y1 := VelocitySegment(entity.Box{X: 10, Y: 20, Size: 40, DX: 100, DY: -40})
	if x0 != 30 || y0 != 40 || x1 != 55 || y1 != 30 {
		t.Fatalf("segment = (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
}
