//go:build ebiten

package app

import (
	"time"

	"github.com/Pseudonium/Cell-simulator/internal/core"
	"github.com/Pseudonium/Cell-simulator/internal/pattern"
	"github.com/Pseudonium/Cell-simulator/internal/render"
	"github.com/Pseudonium/Cell-simulator/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a driven grid to the ebiten.Game interface.
type Game struct {
	factory pattern.Factory
	opts    pattern.Options

	runner  *core.Runner
	painter *render.GridPainter

	scale int
}

// New builds the initial grid from the pattern factory and wires it to a
// painter behind a fixed-cadence runner.
func New(factory pattern.Factory, opts pattern.Options, scale, tps int) (*Game, error) {
	grid, err := buildGrid(factory, opts)
	if err != nil {
		return nil, err
	}
	gp := render.NewGridPainter(opts.Size, render.DefaultStyle())
	return &Game{
		factory: factory,
		opts:    opts,
		runner:  core.NewRunner(grid, gp, core.NewFixedStep(tps)),
		painter: gp,
		scale:   scale,
	}, nil
}

// Reset rebuilds the grid from the original pattern with the given seed.
func (g *Game) Reset(seed int64) {
	g.opts.Seed = seed
	grid, err := buildGrid(g.factory, g.opts)
	if err != nil {
		// Only the seed changed since the last successful build, and seeds
		// cannot push a pattern out of bounds. Keep the current grid.
		return
	}
	g.runner.Replace(grid)
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.runner.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.runner.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.opts.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.runner.Update()
	return nil
}

// Draw renders the current grid state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Size * g.scale, g.opts.Size * g.scale
}

func buildGrid(factory pattern.Factory, opts pattern.Options) (*life.Grid, error) {
	return life.New(factory(opts).GridConfig(opts.Size))
}
