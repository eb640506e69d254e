// Package config provides configuration loading for the floatbox commands.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"floatbox/pkg/entity"
	"floatbox/pkg/engine"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the simulation and its frontends.
type Config struct {
	Seed     int64          `yaml:"seed"`
	Boxes    BoxesConfig    `yaml:"boxes"`
	Engine   EngineConfig   `yaml:"engine"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
	Trace    TraceConfig    `yaml:"trace"`
	Log      LogConfig      `yaml:"log"`
}

// BoxesConfig holds box generation parameters.
type BoxesConfig struct {
	Count    int       `yaml:"count"`
	Sizes    []float64 `yaml:"sizes"`
	MinSpeed float64   `yaml:"min_speed"` // pixels per second
	MaxSpeed float64   `yaml:"max_speed"`
}

// EngineConfig holds physics and color policy settings.
type EngineConfig struct {
	DeltaCap           float64 `yaml:"delta_cap"` // seconds of motion per frame, at most
	ColorAction        string  `yaml:"color_action"`
	RecolorOnCollision bool    `yaml:"recolor_on_collision"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

// TerminalConfig maps terminal cells to container pixels.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	FPS        int     `yaml:"fps"`
}

// AudioConfig controls the collision chime.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	ChimeMS    int     `yaml:"chime_ms"`
	MaxVoices  int     `yaml:"max_voices"`
	Gain       float64 `yaml:"gain"`
}

// TraceConfig controls headless trace runs.
type TraceConfig struct {
	Frames  int            `yaml:"frames"`
	FPS     int            `yaml:"fps"`
	Every   int            `yaml:"every"` // record every Nth frame
	Resizes []ResizeAction `yaml:"resizes"`
}

// ResizeAction changes the container size at a given frame of a trace run.
type ResizeAction struct {
	Frame  int     `yaml:"frame"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // empty writes to the command's default stream
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file overwrite the defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the values the engine and frontends rely on.
func (c *Config) Validate() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Trace.Every < 1 {
		return fmt.Errorf("trace.every must be at least 1, got %d", c.Trace.Every)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// EngineConfig converts the loaded values into an engine.Config.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Params: entity.Params{
			Count:    c.Boxes.Count,
			Sizes:    append([]float64(nil), c.Boxes.Sizes...),
			MinSpeed: c.Boxes.MinSpeed,
			MaxSpeed: c.Boxes.MaxSpeed,
		},
		DeltaCap:           c.Engine.DeltaCap,
		ColorAction:        entity.ColorActionMode(c.Engine.ColorAction),
		RecolorOnCollision: c.Engine.RecolorOnCollision,
	}
}

// SetEngineConfig stores e back into the box and engine sections.
func (c *Config) SetEngineConfig(e engine.Config) {
	c.Boxes.Count = e.Params.Count
	c.Boxes.Sizes = append([]float64(nil), e.Params.Sizes...)
	c.Boxes.MinSpeed = e.Params.MinSpeed
	c.Boxes.MaxSpeed = e.Params.MaxSpeed
	c.Engine.DeltaCap = e.DeltaCap
	c.Engine.ColorAction = string(e.ColorAction)
	c.Engine.RecolorOnCollision = e.RecolorOnCollision
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
