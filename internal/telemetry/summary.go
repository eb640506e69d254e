package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates collision statistics over a run.
type Summary struct {
	Frames     int
	SimTimeSec float64
	Collisions int

	// Per-box collision counts.
	PerBoxMean   float64
	PerBoxStdDev float64
	PerBoxMax    int

	// Seconds of simulated time between consecutive collisions of one box.
	IntervalMean float64
	IntervalP50  float64
	IntervalP90  float64
}

// Summary computes statistics over everything observed so far.
func (r *Recorder) Summary() Summary {
	s := Summary{Frames: r.frames, SimTimeSec: r.simTime}

	counts := make([]float64, r.boxesCount)
	for id, n := range r.counts {
		s.Collisions += n
		if id >= 0 && id < len(counts) {
			counts[id] = float64(n)
		}
		s.PerBoxMax = max(s.PerBoxMax, n)
	}
	if len(counts) > 0 {
		s.PerBoxMean, s.PerBoxStdDev = stat.MeanStdDev(counts, nil)
		if len(counts) == 1 {
			s.PerBoxStdDev = 0
		}
	}

	if len(r.intervals) > 0 {
		sorted := slices.Clone(r.intervals)
		slices.Sort(sorted)
		s.IntervalMean = stat.Mean(sorted, nil)
		s.IntervalP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		s.IntervalP90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("collisions", s.Collisions),
		slog.Float64("per_box_mean", s.PerBoxMean),
		slog.Float64("per_box_std", s.PerBoxStdDev),
		slog.Int("per_box_max", s.PerBoxMax),
		slog.Float64("interval_mean", s.IntervalMean),
		slog.Float64("interval_p50", s.IntervalP50),
		slog.Float64("interval_p90", s.IntervalP90),
	)
}
