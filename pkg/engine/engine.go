package engine

import (
	"image/color"
	"log/slog"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// FrameReport describes the outcome of one Frame call.
type FrameReport struct {
	Index      int
	Timestamp  float64
	Delta      float64
	Bounds     core.Bounds
	Boxes      entity.Set
	Collisions []Collision
}

// Observer is notified after every frame the engine computes.
type Observer interface {
	ObserveFrame(FrameReport)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(FrameReport)

// ObserveFrame calls f.
func (f ObserverFunc) ObserveFrame(r FrameReport) { f(r) }

// Engine owns the current snapshot and applies frame, resize and color
// events to it. It is not safe for concurrent use; callers serialize events
// on one goroutine.
type Engine struct {
	cfg      Config
	rng      *core.RNG
	provider core.BoundsProvider
	log      *slog.Logger
	clock    *core.FrameClock

	bounds     core.Bounds
	boxes      entity.Set
	frames     int
	collisions int
	paused     bool
	// timestamp of the last advanced frame, in milliseconds
	lastTimestamp float64

	observers []Observer
}

// New creates the initial boxes from estimate. Call Start once the real
// container can be measured.
func New(cfg Config, estimate core.Bounds, rng *core.RNG, provider core.BoundsProvider) *Engine {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	if provider == nil {
		provider = core.FixedBounds(estimate)
	}
	return &Engine{
		cfg:      cfg,
		rng:      rng,
		provider: provider,
		log:      slog.New(slog.DiscardHandler),
		clock:    core.NewFrameClock(cfg.DeltaCap),
		bounds:   estimate,
		boxes:    entity.CreateInitialBoxes(estimate, cfg.Params, rng),
	}
}

// SetLogger replaces the engine's logger. A nil logger is ignored.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// AddObserver registers o for frame reports.
func (e *Engine) AddObserver(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Bounds returns the container dimensions the engine currently uses.
func (e *Engine) Bounds() core.Bounds { return e.bounds }

// Snapshot returns a copy of the current boxes.
func (e *Engine) Snapshot() entity.Set { return e.boxes.Clone() }

// Frames returns the number of frames computed so far.
func (e *Engine) Frames() int { return e.frames }

// Collisions returns the number of box-boundary collisions so far.
func (e *Engine) Collisions() int { return e.collisions }

// Paused reports whether frames are currently ignored.
func (e *Engine) Paused() bool { return e.paused }

// Start reconciles the initial boxes with the first real measurement of the
// container. It does nothing while the provider is not ready.
func (e *Engine) Start() entity.Set {
	if e.refreshBounds() {
		e.log.Debug("container measured", "width", e.bounds.W, "height", e.bounds.H)
	}
	return e.Snapshot()
}

// Resize refreshes the bounds from the provider and clamps every box inside.
func (e *Engine) Resize() entity.Set {
	if e.refreshBounds() {
		e.log.Debug("container resized", "width", e.bounds.W, "height", e.bounds.H)
	}
	return e.Snapshot()
}

func (e *Engine) refreshBounds() bool {
	b, ok := e.provider.Bounds()
	if !ok || !b.Valid() {
		return false
	}
	e.bounds = b
	e.boxes = ClampToBounds(e.boxes, b)
	return true
}

// Frame advances the simulation to timestamp (milliseconds). While paused the
// current snapshot is returned unchanged.
func (e *Engine) Frame(timestamp float64) entity.Set {
	if e.paused {
		return e.Snapshot()
	}
	return e.advance(timestamp, e.clock.Delta(timestamp))
}

// StepOnce advances a paused engine by a single frame of dt seconds, capped
// like any other frame. It does nothing while running.
func (e *Engine) StepOnce(dt float64) entity.Set {
	if !e.paused {
		return e.Snapshot()
	}
	dt = min(max(dt, 0), e.clock.Cap())
	return e.advance(e.lastTimestamp+dt*1000, dt)
}

func (e *Engine) advance(timestamp, dt float64) entity.Set {
	e.lastTimestamp = timestamp
	var recolor Recolor
	if e.cfg.RecolorOnCollision {
		recolor = func() color.RGBA { return entity.RandomColor(e.rng) }
	}
	next, hits := step(e.boxes, e.bounds, dt, recolor)
	e.boxes = next
	e.frames++
	e.collisions += len(hits)

	if len(e.observers) > 0 {
		report := FrameReport{
			Index:      e.frames,
			Timestamp:  timestamp,
			Delta:      dt,
			Bounds:     e.bounds,
			Boxes:      next.Clone(),
			Collisions: hits,
		}
		for _, o := range e.observers {
			o.ObserveFrame(report)
		}
	}
	return e.Snapshot()
}

// TriggerColorAction applies the configured color action.
func (e *Engine) TriggerColorAction() entity.Set {
	e.boxes = entity.ApplyColorAction(e.boxes, e.cfg.ColorAction, e.rng)
	e.log.Debug("color action", "mode", string(e.cfg.ColorAction))
	return e.Snapshot()
}

// Pause stops frame processing until Resume.
func (e *Engine) Pause() { e.paused = true }

// Resume restarts frame processing. The next frame applies no motion so time
// spent paused is not simulated.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.paused = false
	e.clock.Reset()
}
