package engine

import (
	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// ClampToBounds pulls every box back inside b after the container shrank.
// Only positions change; applying it twice is the same as applying it once.
func ClampToBounds(set entity.Set, b core.Bounds) entity.Set {
	next := set.Clone()
	for i := range next {
		maxX, maxY := b.Room(next[i].Size)
		next[i].X = min(next[i].X, maxX)
		next[i].Y = min(next[i].Y, maxY)
	}
	return next
}
