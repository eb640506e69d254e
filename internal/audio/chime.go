// Package audio plays a short chime whenever a box hits a wall.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Chime returns a decaying sine tone of the given frequency and length.
func Chime(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := math.Sin(2*math.Pi*freq*t) * env * gain
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// pitchFor maps a box size to a frequency: bigger boxes sound lower.
func pitchFor(size float64) float64 {
	if size <= 0 {
		size = 1
	}
	return math.Min(1760, 55000/size)
}
