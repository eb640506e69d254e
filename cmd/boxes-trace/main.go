package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"floatbox/internal/config"
	"floatbox/internal/render"
	"floatbox/internal/telemetry"
	"floatbox/pkg/core"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	outDir := flag.String("out", "trace-out", "directory for trace.csv, config.yaml and final.png")
	frames := flag.Int("frames", 0, "frames to simulate (0 uses trace.frames)")
	fps := flag.Int("fps", 0, "synthetic frame rate (0 uses trace.fps)")
	every := flag.Int("every", 0, "record every Nth frame (0 uses trace.every)")
	width := flag.Float64("width", 0, "initial container width (0 uses window.width)")
	height := flag.Float64("height", 0, "initial container height (0 uses window.height)")
	flag.Parse()

	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *frames > 0 {
		cfg.Trace.Frames = *frames
	}
	if *fps > 0 {
		cfg.Trace.FPS = *fps
	}
	if *every > 0 {
		cfg.Trace.Every = *every
	}
	container := core.Bounds{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	if *width > 0 {
		container.W = *width
	}
	if *height > 0 {
		container.H = *height
	}

	if err := run(cfg, container, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, container core.Bounds, outDir string) error {
	logger, closeLog, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	cfg.Seed = cfg.ResolveSeed()
	if err := cfg.WriteYAML(filepath.Join(outDir, "config.yaml")); err != nil {
		return err
	}

	traceFile, err := os.Create(filepath.Join(outDir, "trace.csv"))
	if err != nil {
		return fmt.Errorf("creating trace: %w", err)
	}
	defer traceFile.Close()

	resizes := make([]telemetry.Resize, 0, len(cfg.Trace.Resizes))
	for _, r := range cfg.Trace.Resizes {
		resizes = append(resizes, telemetry.Resize{Frame: r.Frame, Bounds: core.Bounds{W: r.Width, H: r.Height}})
	}
	session := telemetry.NewSession(cfg.EngineConfig(), container, cfg.Seed, cfg.Trace.FPS, resizes)
	session.SetLogger(logger)
	rec := telemetry.NewRecorder(traceFile, cfg.Trace.Every)
	session.Engine().AddObserver(rec)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("trace starting", "frames", cfg.Trace.Frames, "fps", cfg.Trace.FPS, "seed", cfg.Seed,
		"width", container.W, "height", container.H, "resizes", len(resizes))
	start := time.Now()
	final, err := session.Run(ctx, cfg.Trace.Frames)
	if err != nil {
		return err
	}
	if err := rec.Err(); err != nil {
		return err
	}

	img := render.Image(final, session.Engine().Bounds(), render.Background)
	pngFile, err := os.Create(filepath.Join(outDir, "final.png"))
	if err != nil {
		return fmt.Errorf("creating final frame: %w", err)
	}
	defer pngFile.Close()
	if err := png.Encode(pngFile, img); err != nil {
		return fmt.Errorf("encoding final frame: %w", err)
	}

	logger.Info("trace complete", "elapsed", time.Since(start).Round(time.Millisecond), "summary", rec.Summary(), "out", outDir)
	if res, err := telemetry.SampleProcess(); err != nil {
		logger.Warn("resource sample failed", "err", err)
	} else {
		logger.Info("resources", "process", res)
	}
	return nil
}
