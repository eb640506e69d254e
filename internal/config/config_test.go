package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"floatbox/pkg/entity"
)

func TestDefaultsMatchEntityDefaults(t *testing.T) {
	cfg := Default()
	ec := cfg.EngineConfig()
	want := entity.DefaultParams()

	if ec.Params.Count != want.Count || !slices.Equal(ec.Params.Sizes, want.Sizes) {
		t.Fatalf("box defaults diverged: %+v", ec.Params)
	}
	if ec.Params.MinSpeed != 60 || ec.Params.MaxSpeed != 160 || ec.DeltaCap != 0.05 {
		t.Fatalf("physics defaults diverged: %+v", ec)
	}
	if ec.ColorAction != entity.ModeResetAll || !ec.RecolorOnCollision {
		t.Fatalf("color defaults diverged: %+v", ec)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "engine:\n  color_action: randomize-one\nboxes:\n  sizes: [40, 50]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.ColorAction != "randomize-one" {
		t.Fatalf("color action = %q", cfg.Engine.ColorAction)
	}
	if !slices.Equal(cfg.Boxes.Sizes, []float64{40, 50}) {
		t.Fatalf("sizes = %v", cfg.Boxes.Sizes)
	}
	if cfg.Boxes.Count != 7 || cfg.Window.Width != 1024 {
		t.Fatal("fields absent from the file must keep their defaults")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"mode":   "engine:\n  color_action: sparkle\n",
		"speed":  "boxes:\n  min_speed: 200\n  max_speed: 100\n",
		"level":  "log:\n  level: loud\n",
		"format": "log:\n  format: xml\n",
		"every":  "trace:\n  every: 0\n",
		"syntax": "boxes: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 77
	cfg.Trace.Resizes = []ResizeAction{{Frame: 10, Width: 320, Height: 240}}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Seed != 77 || len(loaded.Trace.Resizes) != 1 || loaded.Trace.Resizes[0].Width != 320 {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer closeFn()
	log.Info("hidden")
	log.Warn("shown", "box", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"box":3`) {
		t.Fatalf("unexpected log output %q", out)
	}
	if cfg := Default(); cfg.ResolveSeed() == 0 {
		t.Fatal("unset seed must resolve to a time-based value")
	}
}
