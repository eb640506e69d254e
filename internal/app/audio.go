package app

import (
	"log/slog"
	"time"

	"floatbox/internal/audio"
	"floatbox/internal/config"
	"floatbox/pkg/engine"
)

// AttachAudio opens the audio device and plays a chime for every collision
// eng reports. It does nothing when audio is disabled. The returned function
// releases the device.
func AttachAudio(eng *engine.Engine, cfg config.AudioConfig, log *slog.Logger) (func(), error) {
	if !cfg.Enabled {
		return func() {}, nil
	}
	p := audio.NewPlayer(audioConfig(cfg), log)
	if err := p.Initialize(); err != nil {
		return func() {}, err
	}
	eng.AddObserver(p)
	return p.Close, nil
}

func audioConfig(cfg config.AudioConfig) audio.Config {
	return audio.Config{
		SampleRate: cfg.SampleRate,
		Chime:      time.Duration(cfg.ChimeMS) * time.Millisecond,
		MaxVoices:  cfg.MaxVoices,
		Gain:       cfg.Gain,
	}
}
