package engine

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"floatbox/pkg/core"
	"floatbox/pkg/entity"
)

// Config controls the engine's physics and color policies.
type Config struct {
	Params entity.Params

	// DeltaCap bounds the seconds of motion a single frame may apply.
	DeltaCap float64

	ColorAction entity.ColorActionMode

	// RecolorOnCollision gives a box a new random color whenever it touches
	// an edge.
	RecolorOnCollision bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Params:             entity.DefaultParams(),
		DeltaCap:           core.DefaultDeltaCap,
		ColorAction:        entity.ModeResetAll,
		RecolorOnCollision: true,
	}
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("box params: %w", err)
	}
	if c.DeltaCap <= 0 {
		return fmt.Errorf("delta cap must be positive, got %v", c.DeltaCap)
	}
	if _, err := entity.ParseColorActionMode(string(c.ColorAction)); err != nil {
		return err
	}
	return nil
}

// overrideKeys lists the keys FromMap and WithOverrides understand, in the
// order they are applied.
var overrideKeys = []string{"mode", "recolor", "delta_cap", "count", "min_speed", "max_speed"}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored and keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for _, key := range overrideKeys {
		if v, ok := cfg[key]; ok {
			_ = c.override(key, v)
		}
	}
	if c.Params.MaxSpeed < c.Params.MinSpeed {
		c.Params.MaxSpeed = c.Params.MinSpeed
	}
	return c
}

// WithOverrides returns a copy of c with the keys of cfg applied on top. Any
// unknown key, unparseable value or invalid result is an error.
func (c Config) WithOverrides(cfg map[string]string) (Config, error) {
	c.Params.Sizes = append([]float64(nil), c.Params.Sizes...)
	for key := range cfg {
		if !slices.Contains(overrideKeys, key) {
			return c, fmt.Errorf("unknown override %q", key)
		}
	}
	for _, key := range overrideKeys {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if err := c.override(key, v); err != nil {
			return c, fmt.Errorf("override %s=%q: %w", key, v, err)
		}
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// override applies one key. c is left untouched when v is rejected.
func (c *Config) override(key, v string) error {
	switch key {
	case "mode":
		parsed, err := entity.ParseColorActionMode(v)
		if err != nil {
			return err
		}
		c.ColorAction = parsed
	case "recolor":
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.RecolorOnCollision = parsed
	case "delta_cap":
		parsed, err := positiveFloat(v)
		if err != nil {
			return err
		}
		c.DeltaCap = parsed
	case "count":
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		if parsed <= 0 {
			return fmt.Errorf("must be positive")
		}
		c.Params.Count = parsed
	case "min_speed":
		parsed, err := positiveFloat(v)
		if err != nil {
			return err
		}
		c.Params.MinSpeed = parsed
	case "max_speed":
		parsed, err := positiveFloat(v)
		if err != nil {
			return err
		}
		c.Params.MaxSpeed = parsed
	}
	return nil
}

func positiveFloat(v string) (float64, error) {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("must be a positive number")
	}
	return parsed, nil
}
