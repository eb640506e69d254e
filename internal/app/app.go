//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"floatbox/internal/config"
	"floatbox/internal/render"
	"floatbox/internal/ui"
	"floatbox/pkg/core"
	"floatbox/pkg/engine"
	"floatbox/pkg/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game adapts the box engine to the ebiten.Game interface. It is also the
// engine's bounds provider: the playground is the window minus the header.
type Game struct {
	eng     *engine.Engine
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	start    time.Time
	stepSecs float64

	outW, outH int
	measured   bool
	started    bool
	resized    bool
	boxes      entity.Set
}

// New constructs a Game from cfg. The initial boxes are placed in an
// estimate derived from the window size until the first Layout.
func New(cfg *config.Config, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	tps := cfg.Window.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		hud:      ui.NewHUD(cfg.Window.Title, entity.ColorActionMode(cfg.Engine.ColorAction)),
		overlay:  ui.NewOverlay(),
		log:      log,
		stepSecs: 1 / float64(tps),
	}
	estimate := entity.EstimateBounds(cfg.Window.Width, cfg.Window.Height, true)
	g.eng = engine.New(cfg.EngineConfig(), estimate, core.NewRNG(cfg.ResolveSeed()), g)
	g.eng.SetLogger(log)
	g.boxes = g.eng.Snapshot()
	return g
}

// Engine exposes the underlying engine, e.g. to attach observers.
func (g *Game) Engine() *engine.Engine { return g.eng }

// Bounds implements core.BoundsProvider.
func (g *Game) Bounds() (core.Bounds, bool) {
	if !g.measured {
		return core.Bounds{}, false
	}
	b := core.Bounds{W: float64(g.outW), H: float64(g.outH - ui.HeaderHeight)}
	return b, b.Valid()
}

// Update handles input and advances the engine by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested", "frames", g.eng.Frames(), "collisions", g.eng.Collisions())
		return ebiten.Termination
	}

	switch {
	case !g.started && g.measured:
		g.boxes = g.eng.Start()
		g.started = true
		g.resized = false
		g.start = time.Now()
	case g.resized:
		g.boxes = g.eng.Resize()
		g.resized = false
	}
	if !g.started {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.Paused() {
			g.eng.Resume()
		} else {
			g.eng.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.boxes = g.eng.StepOnce(g.stepSecs)
	}
	clicked := g.hud.Update(g.outW, g.eng.Parameters())
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.boxes = g.eng.TriggerColorAction()
	}
	g.overlay.Update()

	ms := float64(time.Since(g.start)) / float64(time.Millisecond)
	g.boxes = g.eng.Frame(ms)
	return nil
}

// Draw renders the header, the boxes and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	for _, box := range g.boxes {
		vector.DrawFilledRect(screen, float32(box.X), float32(box.Y+ui.HeaderHeight), float32(box.Size), float32(box.Size), box.Color, false)
	}
	g.overlay.Draw(screen, g.boxes, ui.HeaderHeight)
	g.hud.Draw(screen)
}

// Layout uses the outside size as the logical screen size, so the playground
// follows the window. A size change is applied on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.measured || outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		if g.measured {
			g.resized = true
		}
		g.measured = true
	}
	return outsideWidth, outsideHeight
}
