// Package term renders the boxes in a terminal and feeds terminal events to
// the engine.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"floatbox/internal/render"
	"floatbox/pkg/core"
	"floatbox/pkg/engine"
	"floatbox/pkg/entity"
)

const (
	headerRows = 1
	boxGlyph   = '█'
)

var errQuit = errors.New("quit requested")

// Frontend draws snapshots onto a tcell screen. Each cell stands for
// CellW x CellH container pixels; the top row is a status header.
type Frontend struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	title  string
	label  string
	grid   *core.ByteGrid
	eng    *engine.Engine
	log    *slog.Logger
}

// New wraps an initialized screen.
func New(screen tcell.Screen, cellW, cellH float64, title string, mode entity.ColorActionMode) *Frontend {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Frontend{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		title:  title,
		label:  mode.Label(),
		grid:   core.NewByteGrid(1, 1),
		log:    slog.New(slog.DiscardHandler),
	}
}

// SetLogger replaces the frontend's logger.
func (f *Frontend) SetLogger(l *slog.Logger) {
	if l != nil {
		f.log = l
	}
}

// Bounds reports the playground size in container pixels. It implements
// core.BoundsProvider and is not ready while the screen has no rows below
// the header.
func (f *Frontend) Bounds() (core.Bounds, bool) {
	cols, rows := f.screen.Size()
	rows -= headerRows
	if cols <= 0 || rows <= 0 {
		return core.Bounds{}, false
	}
	return core.Bounds{W: float64(cols) * f.cellW, H: float64(rows) * f.cellH}, true
}

// Render implements engine.Renderer.
func (f *Frontend) Render(set entity.Set) {
	cols, rows := f.screen.Size()
	playRows := rows - headerRows
	if cols <= 0 || playRows <= 0 {
		return
	}
	if f.grid.W != cols || f.grid.H != playRows {
		f.grid.Resize(cols, playRows)
	}
	render.Rasterize(f.grid, set, f.cellW, f.cellH)
	palette := render.Palette(set, render.Background)

	bg := tcell.StyleDefault.Background(rgb(render.Background))
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = bg.Foreground(rgb(c))
	}
	for y := 0; y < playRows; y++ {
		for x := 0; x < cols; x++ {
			v := f.grid.At(x, y)
			if v == 0 {
				f.screen.SetContent(x, y+headerRows, ' ', nil, bg)
				continue
			}
			f.screen.SetContent(x, y+headerRows, boxGlyph, nil, styles[v])
		}
	}
	f.drawHeader(cols)
	f.screen.Show()
}

func (f *Frontend) drawHeader(cols int) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(40, 42, 54)).Foreground(tcell.ColorWhite)
	text := fmt.Sprintf(" %s  [c] %s  [space] pause  [n] step  [q] quit", f.title, f.label)
	if f.eng != nil {
		text += fmt.Sprintf("  frames %d  collisions %d", f.eng.Frames(), f.eng.Collisions())
		if f.eng.Paused() {
			text += "  PAUSED"
		}
	}
	runes := []rune(text)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		f.screen.SetContent(x, 0, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// translate maps a terminal event to an engine event. step is the delta of a
// single step while paused. The second result is false when the event should
// be ignored.
func translate(ev tcell.Event, step float64) (engine.Event, bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return engine.ResizeEvent{}, true, nil
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, false, errQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return nil, false, errQuit
			case 'c', 'C':
				return engine.ColorActionEvent{}, true, nil
			case ' ':
				return engine.PauseEvent{}, true, nil
			case 'n', 'N':
				return engine.StepEvent{Delta: step}, true, nil
			}
		}
	}
	return nil, false, nil
}

// Run drives eng from terminal input and a frame ticker until ctx is done or
// the user quits. The caller owns the screen and finalizes it afterwards.
func (f *Frontend) Run(ctx context.Context, eng *engine.Engine, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	f.eng = eng
	f.screen.HideCursor()
	f.Render(eng.Start())

	stop := make(chan struct{})
	defer close(stop)
	raw := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case raw <- ev:
			case <-stop:
				return
			}
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan engine.Event, 64)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-raw:
				if _, ok := ev.(*tcell.EventResize); ok {
					f.screen.Sync()
				}
				next, ok, err := translate(ev, 1/float64(fps))
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				select {
				case events <- next:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	g.Go(func() error {
		engine.Frames(ctx, time.Second/time.Duration(fps), events)
		return nil
	})
	g.Go(func() error {
		return eng.Run(ctx, events, f)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		f.log.Info("quit requested", "frames", eng.Frames(), "collisions", eng.Collisions())
		return nil
	}
	return err
}
