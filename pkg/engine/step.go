// Package engine advances the box simulation frame by frame and keeps every
// box inside the container.
package engine

import (
	"image/color"
	"math"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// Recolor supplies a new color for a box that touched a boundary.
type Recolor func() color.RGBA

// Collision records which axes of a box hit a boundary during one step.
type Collision struct {
	ID int
	X  bool
	Y  bool
}

// Advance integrates every box over dt seconds, reflecting velocities at the
// container edges. A nil recolor leaves colors untouched.
func Advance(prev entity.Set, b core.Bounds, dt float64, recolor Recolor) entity.Set {
	next, _ := step(prev, b, dt, recolor)
	return next
}

func step(prev entity.Set, b core.Bounds, dt float64, recolor Recolor) (entity.Set, []Collision) {
	next := make(entity.Set, len(prev))
	var hits []Collision
	for i, box := range prev {
		moved, hit := advanceBox(box, b, dt)
		if hit.X || hit.Y {
			if recolor != nil {
				moved.Color = recolor()
			}
			hits = append(hits, hit)
		}
		next[i] = moved
	}
	return next, hits
}

func advanceBox(box entity.Box, b core.Bounds, dt float64) (entity.Box, Collision) {
	hit := Collision{ID: box.ID}
	box.X, box.DX, hit.X = reflectAxis(box.X, box.DX, box.Size, b.W, dt)
	box.Y, box.DY, hit.Y = reflectAxis(box.Y, box.DY, box.Size, b.H, dt)
	return box, hit
}

// reflectAxis moves pos by vel*dt along one axis of length extent. When the
// box does not fit on the axis it is pinned at 0 heading forward, and only the
// frame that flips its heading counts as a collision.
func reflectAxis(pos, vel, size, extent, dt float64) (float64, float64, bool) {
	speed := math.Abs(vel)
	if extent-size <= 0 {
		return 0, speed, vel < 0
	}
	next := pos + vel*dt
	if next <= 0 {
		return 0, speed, true
	}
	if next+size >= extent {
		return extent - size, -speed, true
	}
	return next, vel, false
}
