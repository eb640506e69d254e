package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"floatbox/pkg/core"
	"floatbox/pkg/engine"
	"floatbox/pkg/entity"
)

// Resize changes the container size before the given frame (1-based).
type Resize struct {
	Frame  int
	Bounds core.Bounds
}

// Session drives an engine with synthetic timestamps, as if a display ran at
// a fixed frame rate, and applies a resize schedule.
type Session struct {
	eng       *engine.Engine
	container core.Bounds
	resizes   []Resize
	fps       int
	log       *slog.Logger
}

// NewSession creates the engine for a headless run in a container of the
// given initial size.
func NewSession(cfg engine.Config, container core.Bounds, seed int64, fps int, resizes []Resize) *Session {
	if fps <= 0 {
		fps = 60
	}
	s := &Session{
		container: container,
		resizes:   slices.Clone(resizes),
		fps:       fps,
		log:       slog.New(slog.DiscardHandler),
	}
	slices.SortStableFunc(s.resizes, func(a, b Resize) int { return a.Frame - b.Frame })
	s.eng = engine.New(cfg, container, core.NewRNG(seed), s)
	return s
}

// SetLogger replaces the session's logger and the engine's.
func (s *Session) SetLogger(l *slog.Logger) {
	if l != nil {
		s.log = l
		s.eng.SetLogger(l)
	}
}

// Engine exposes the engine so observers can be attached before Run.
func (s *Session) Engine() *engine.Engine { return s.eng }

// Bounds implements core.BoundsProvider.
func (s *Session) Bounds() (core.Bounds, bool) { return s.container, s.container.Valid() }

// Run advances frames frames and returns the final snapshot. It stops early
// with ctx's error when ctx is done.
func (s *Session) Run(ctx context.Context, frames int) (entity.Set, error) {
	set := s.eng.Start()
	next := 0
	interval := 1000 / float64(s.fps)
	for i := 1; i <= frames; i++ {
		if err := ctx.Err(); err != nil {
			return set, fmt.Errorf("trace stopped at frame %d: %w", i, err)
		}
		for next < len(s.resizes) && s.resizes[next].Frame <= i {
			s.container = s.resizes[next].Bounds
			s.log.Debug("resize", "frame", i, "width", s.container.W, "height", s.container.H)
			set = s.eng.Resize()
			next++
		}
		set = s.eng.Frame(float64(i-1) * interval)
	}
	return set, nil
}
