package core

// DefaultDeltaCap bounds the simulated time a single frame may cover.
const DefaultDeltaCap = 0.05

// FrameClock converts frame timestamps into simulation deltas.
type FrameClock struct {
	cap     float64
	last    float64
	started bool
}

// NewFrameClock constructs a FrameClock that never reports more than
// capSeconds per frame.
func NewFrameClock(capSeconds float64) *FrameClock {
	if capSeconds <= 0 {
		capSeconds = DefaultDeltaCap
	}
	return &FrameClock{cap: capSeconds}
}

// Delta records timestamp (milliseconds) and returns the elapsed seconds since
// the previous call, capped. The first call of a session returns 0.
func (c *FrameClock) Delta(timestamp float64) float64 {
	if !c.started {
		c.started = true
		c.last = timestamp
		return 0
	}
	delta := (timestamp - c.last) / 1000
	c.last = timestamp
	if delta < 0 {
		return 0
	}
	return min(delta, c.cap)
}

// Reset begins a new session; the next Delta call returns 0.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = 0
}

// Cap returns the per-frame delta ceiling in seconds.
func (c *FrameClock) Cap() float64 { return c.cap }
