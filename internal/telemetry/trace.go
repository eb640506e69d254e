// Package telemetry records frame traces and summarizes runs.
package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"floatbox/pkg/engine"
	"floatbox/pkg/entity"
)

// FrameRecord is one box's state at the end of a recorded frame.
type FrameRecord struct {
	Frame     int     `csv:"frame"`
	Timestamp float64 `csv:"timestamp_ms"`
	Delta     float64 `csv:"delta"`
	Width     float64 `csv:"width"`
	Height    float64 `csv:"height"`
	BoxID     int     `csv:"box"`
	Size      float64 `csv:"size"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	DX        float64 `csv:"dx"`
	DY        float64 `csv:"dy"`
	Color     string  `csv:"color"`
	Collided  bool    `csv:"collided"`
}

// Recorder is an engine.Observer that writes sampled frames as CSV and keeps
// collision statistics for every frame.
type Recorder struct {
	out           io.Writer
	every         int
	headerWritten bool
	err           error

	frames     int
	simTime    float64
	counts     map[int]int
	lastHit    map[int]float64
	intervals  []float64
	boxesCount int
}

// NewRecorder writes every Nth frame to out. A nil out only collects
// statistics.
func NewRecorder(out io.Writer, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{
		out:     out,
		every:   every,
		counts:  make(map[int]int),
		lastHit: make(map[int]float64),
	}
}

// ObserveFrame implements engine.Observer.
func (r *Recorder) ObserveFrame(rep engine.FrameReport) {
	r.frames++
	r.simTime += rep.Delta
	r.boxesCount = len(rep.Boxes)

	hit := make(map[int]bool, len(rep.Collisions))
	for _, c := range rep.Collisions {
		hit[c.ID] = true
		r.counts[c.ID]++
		if last, ok := r.lastHit[c.ID]; ok {
			r.intervals = append(r.intervals, r.simTime-last)
		}
		r.lastHit[c.ID] = r.simTime
	}

	if r.out == nil || r.err != nil || (rep.Index-1)%r.every != 0 {
		return
	}
	records := make([]FrameRecord, 0, len(rep.Boxes))
	for _, box := range rep.Boxes {
		records = append(records, recordFor(rep, box, hit[box.ID]))
	}
	r.err = r.write(records)
}

func recordFor(rep engine.FrameReport, box entity.Box, collided bool) FrameRecord {
	return FrameRecord{
		Frame:     rep.Index,
		Timestamp: rep.Timestamp,
		Delta:     rep.Delta,
		Width:     rep.Bounds.W,
		Height:    rep.Bounds.H,
		BoxID:     box.ID,
		Size:      box.Size,
		X:         box.X,
		Y:         box.Y,
		DX:        box.DX,
		DY:        box.DY,
		Color:     entity.Hex(box.Color),
		Collided:  collided,
	}
}

func (r *Recorder) write(records []FrameRecord) error {
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error { return r.err }
