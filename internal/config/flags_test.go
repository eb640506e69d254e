package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"floatbox/pkg/entity"
)

func parse(t *testing.T, args ...string) (*Flags, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := NewFlags()
	f.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f, fs
}

func TestFlagsDefaultsMatchConfig(t *testing.T) {
	f, fs := parse(t)
	cfg, err := f.Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.ColorAction != string(entity.ModeResetAll) || !cfg.Engine.RecolorOnCollision {
		t.Fatalf("unexpected defaults %+v", cfg.Engine)
	}
	if cfg.Boxes.Count != entity.BoxCount {
		t.Fatalf("count = %d", cfg.Boxes.Count)
	}
}

func TestFlagsOverrideOnlyVisited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxes.yaml")
	yml := "seed: 7\nboxes:\n  count: 4\nengine:\n  color_action: randomize-one\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	f, fs := parse(t, "-config", path, "-recolor=false", "-max-speed", "90", "-log-level", "debug")
	cfg, err := f.Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Boxes.Count != 4 || cfg.Engine.ColorAction != "randomize-one" {
		t.Fatalf("file values lost: seed=%d count=%d mode=%s", cfg.Seed, cfg.Boxes.Count, cfg.Engine.ColorAction)
	}
	if cfg.Engine.RecolorOnCollision {
		t.Fatal("-recolor=false not applied")
	}
	if cfg.Boxes.MaxSpeed != 90 || cfg.Boxes.MinSpeed != entity.MinSpeed {
		t.Fatalf("speed range = [%v,%v]", cfg.Boxes.MinSpeed, cfg.Boxes.MaxSpeed)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestFlagsInvalidValues(t *testing.T) {
	tests := [][]string{
		{"-mode", "sparkle"},
		{"-mode", "randomise-one"},
		{"-count", "0"},
		{"-delta-cap", "-1"},
		{"-min-speed", "500"},
		{"-log-level", "loud"},
	}
	for _, args := range tests {
		f, fs := parse(t, args...)
		if _, err := f.Load(fs); err == nil {
			t.Errorf("Load with %v succeeded, want an error", args)
		}
	}
}
