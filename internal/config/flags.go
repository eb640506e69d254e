package config

import (
	"flag"
	"fmt"
)

// engineFlags maps flag names onto engine override keys.
var engineFlags = map[string]string{
	"mode":      "mode",
	"recolor":   "recolor",
	"delta-cap": "delta_cap",
	"count":     "count",
	"min-speed": "min_speed",
	"max-speed": "max_speed",
}

// Flags represents the command-line parameters shared by the commands. Only
// flags that were set on the command line override the loaded configuration.
type Flags struct {
	ConfigPath string
	Seed       int64
	TPS        int
	LogLevel   string
	LogFile    string

	Mode     string
	Recolor  bool
	DeltaCap float64
	Count    int
	MinSpeed float64
	MaxSpeed float64
}

// NewFlags returns Flags populated from the embedded defaults.
func NewFlags() *Flags {
	def := Default()
	return &Flags{
		Seed:     def.Seed,
		TPS:      def.Window.TPS,
		LogLevel: def.Log.Level,
		LogFile:  def.Log.File,
		Mode:     def.Engine.ColorAction,
		Recolor:  def.Engine.RecolorOnCollision,
		DeltaCap: def.Engine.DeltaCap,
		Count:    def.Boxes.Count,
		MinSpeed: def.Boxes.MinSpeed,
		MaxSpeed: def.Boxes.MaxSpeed,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML config file overlaid on the defaults")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&f.TPS, "tps", f.TPS, "window ticks per second")
	fs.StringVar(&f.LogLevel, "log-level", f.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&f.LogFile, "log-file", f.LogFile, "write logs to this file")
	fs.StringVar(&f.Mode, "mode", f.Mode, "color action: reset-all or randomize-one")
	fs.BoolVar(&f.Recolor, "recolor", f.Recolor, "give boxes a new color when they hit a wall")
	fs.Float64Var(&f.DeltaCap, "delta-cap", f.DeltaCap, "largest frame delta in seconds")
	fs.IntVar(&f.Count, "count", f.Count, "number of boxes")
	fs.Float64Var(&f.MinSpeed, "min-speed", f.MinSpeed, "minimum speed in pixels per second")
	fs.Float64Var(&f.MaxSpeed, "max-speed", f.MaxSpeed, "maximum speed in pixels per second")
}

// Load reads the config file named by -config and applies every flag that
// was set on fs. fs must already be parsed.
func (f *Flags) Load(fs *flag.FlagSet) (*Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	overrides := map[string]string{}
	fs.Visit(func(fl *flag.Flag) {
		if key, ok := engineFlags[fl.Name]; ok {
			overrides[key] = fl.Value.String()
			return
		}
		switch fl.Name {
		case "seed":
			cfg.Seed = f.Seed
		case "tps":
			cfg.Window.TPS = f.TPS
		case "log-level":
			cfg.Log.Level = f.LogLevel
		case "log-file":
			cfg.Log.File = f.LogFile
		}
	})
	if len(overrides) > 0 {
		eng, err := cfg.EngineConfig().WithOverrides(overrides)
		if err != nil {
			return nil, fmt.Errorf("invalid flags: %w", err)
		}
		cfg.SetEngineConfig(eng)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
