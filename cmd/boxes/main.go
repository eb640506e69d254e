//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"floatbox/internal/app"
	"floatbox/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, closeLog, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	game := app.New(cfg, logger)
	closeAudio, err := app.AttachAudio(game.Engine(), cfg.Audio, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer closeAudio()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info("starting", "boxes", cfg.Boxes.Count, "mode", cfg.Engine.ColorAction)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "err", err)
		closeAudio()
		closeLog()
		os.Exit(1)
	}
}
