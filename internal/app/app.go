//go:build ebiten

package app

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixlife/internal/config"
	"pixlife/internal/life"
	"pixlife/internal/render"
)

// Game adapts the Life grid to the ebiten.Game interface. The engine itself
// knows nothing about windows; Game borrows the current generation for
// painting and asks for one advance per due tick.
type Game struct {
	grid    *life.Grid
	painter *render.Painter
	blitter *gridBlitter
	pacer   *FixedStep
	cfg     config.Config

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided grid and painter.
func New(grid *life.Grid, painter *render.Painter, cfg config.Config) *Game {
	return &Game{
		grid:    grid,
		painter: painter,
		blitter: newGridBlitter(grid.Width(), grid.Height()),
		pacer:   NewFixedStep(cfg.TPS),
		cfg:     cfg,
	}
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Randomize(g.cfg.Seed, g.cfg.Stream, g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.grid.Randomize(uint64(time.Now().UnixNano()), g.cfg.Stream, g.cfg.Density)
	}

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.cfg.Advance(g.grid)
		g.tickOnce = false
	}
	return nil
}

// Draw paints the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.blitter.Blit(screen, g.painter, g.grid.Cells(), g.cfg.Scale)
}

// Layout returns the logical screen size. Ebiten requires positive
// dimensions, so a degenerate zero-size grid still gets a window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.grid.Width() * g.cfg.Scale
	h := g.grid.Height() * g.cfg.Scale
	if w <= 0 || h <= 0 {
		return 320, 240
	}
	return w, h
}

// Run opens the window and drives the game loop until quit.
func Run(grid *life.Grid, painter *render.Painter, cfg config.Config) error {
	game := New(grid, painter, cfg)

	w := grid.Width() * cfg.Scale
	h := grid.Height() * cfg.Scale
	if w <= 0 || h <= 0 {
		w, h = 320, 240
	}
	ebiten.SetWindowTitle("pixlife")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
