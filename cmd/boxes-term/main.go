package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"floatbox/internal/app"
	"floatbox/internal/config"
	"floatbox/internal/term"
	"floatbox/pkg/core"
	"floatbox/pkg/engine"
	"floatbox/pkg/entity"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		return err
	}
	// The screen owns stderr while running; logs go to the configured file only.
	logger, closeLog, err := cfg.Log.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	mode := entity.ColorActionMode(cfg.Engine.ColorAction)
	front := term.New(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.Window.Title, mode)
	front.SetLogger(logger)

	cols, rows := screen.Size()
	estimate := entity.EstimateBounds(int(float64(cols)*cfg.Terminal.CellWidth), int(float64(rows)*cfg.Terminal.CellHeight), cols > 0 && rows > 0)
	eng := engine.New(cfg.EngineConfig(), estimate, core.NewRNG(cfg.ResolveSeed()), front)
	eng.SetLogger(logger)

	closeAudio, err := app.AttachAudio(eng, cfg.Audio, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "cols", cols, "rows", rows, "boxes", cfg.Boxes.Count)
	return front.Run(ctx, eng, cfg.Terminal.FPS)
}
