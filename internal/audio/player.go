package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"floatbox/pkg/engine"
)

// Config controls chime playback.
type Config struct {
	SampleRate int
	Chime      time.Duration
	MaxVoices  int
	Gain       float64
}

// Player is an engine.Observer that plays one chime per colliding box.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	sr          beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	log         *slog.Logger
}

// NewPlayer creates a player; call Initialize before frames are observed.
func NewPlayer(cfg Config, log *slog.Logger) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.Chime <= 0 {
		cfg.Chime = 120 * time.Millisecond
	}
	if cfg.MaxVoices <= 0 {
		cfg.MaxVoices = 6
	}
	if cfg.Gain <= 0 {
		cfg.Gain = 0.2
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Player{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize opens the audio device and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// ObserveFrame implements engine.Observer.
func (p *Player) ObserveFrame(rep engine.FrameReport) {
	if len(rep.Collisions) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	p.enqueue(rep)
}

// enqueue adds chimes for rep's collisions to the mixer, respecting the voice
// limit. Callers hold p.mu and, once initialized, the speaker lock.
func (p *Player) enqueue(rep engine.FrameReport) int {
	sizes := make(map[int]float64, len(rep.Boxes))
	for _, box := range rep.Boxes {
		sizes[box.ID] = box.Size
	}
	added := 0
	for _, c := range rep.Collisions {
		if p.mixer.Len() >= p.cfg.MaxVoices {
			p.log.Debug("chime dropped", "box", c.ID)
			break
		}
		p.mixer.Add(Chime(p.sr, pitchFor(sizes[c.ID]), p.cfg.Chime, p.cfg.Gain))
		added++
	}
	return added
}

// Close silences the mixer and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
