package engine

import (
	"context"
	"time"

	"floatbox/pkg/entity"
)

// Event is a state transition delivered to Run.
type Event interface {
	apply(*Engine) entity.Set
}

// FrameEvent asks the engine to advance to Timestamp (milliseconds).
type FrameEvent struct {
	Timestamp float64
}

func (ev FrameEvent) apply(e *Engine) entity.Set { return e.Frame(ev.Timestamp) }

// ResizeEvent notifies the engine that the container size changed.
type ResizeEvent struct{}

func (ResizeEvent) apply(e *Engine) entity.Set { return e.Resize() }

// ColorActionEvent triggers the configured color action.
type ColorActionEvent struct{}

func (ColorActionEvent) apply(e *Engine) entity.Set { return e.TriggerColorAction() }

// PauseEvent toggles frame processing.
type PauseEvent struct{}

func (PauseEvent) apply(e *Engine) entity.Set {
	if e.Paused() {
		e.Resume()
	} else {
		e.Pause()
	}
	return e.Snapshot()
}

// StepEvent advances a paused engine by one frame of Delta seconds.
type StepEvent struct{ Delta float64 }

func (ev StepEvent) apply(e *Engine) entity.Set { return e.StepOnce(ev.Delta) }

// Renderer consumes snapshots produced by the engine.
type Renderer interface {
	Render(entity.Set)
}

// Run applies events in arrival order and hands every resulting snapshot to
// sink. It returns when ctx is done or events is closed.
func (e *Engine) Run(ctx context.Context, events <-chan Event, sink Renderer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			set := ev.apply(e)
			if sink != nil {
				sink.Render(set)
			}
		}
	}
}

// Frames emits a FrameEvent every interval until ctx is done. Timestamps are
// milliseconds since Frames was called.
func Frames(ctx context.Context, interval time.Duration, out chan<- Event) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ts := float64(time.Since(start).Microseconds()) / 1000
			select {
			case out <- FrameEvent{Timestamp: ts}:
			case <-ctx.Done():
				return
			}
		}
	}
}
