package core

import "github.com/Pseudonium/Cell-simulator/pkg/life"

// Renderer consumes cell state changes produced by the simulation. The
// grid reports which coordinates were evaluated each tick; the renderer
// re-reads their state to decide what to redraw.
type Renderer interface {
	// InitGrid paints a full-grid snapshot. Called once per grid, before
	// any ticks.
	InitGrid(g *life.Grid)
	// UpdateCells repaints the cells evaluated by the last tick.
	UpdateCells(g *life.Grid, changed []life.Coordinate)
}

// Runner drives a grid on a fixed cadence and forwards each tick's
// changed cells to a renderer. Ticks are synchronous and never overlap:
// Update advances at most one tick per call.
type Runner struct {
	grid     *life.Grid
	renderer Renderer
	timer    *FixedStep

	paused   bool
	stepOnce bool
}

// NewRunner wires a grid to a renderer and paints the initial snapshot.
// A nil timer means one tick per Update call.
func NewRunner(grid *life.Grid, renderer Renderer, timer *FixedStep) *Runner {
	r := &Runner{grid: grid, renderer: renderer, timer: timer}
	r.renderer.InitGrid(grid)
	return r
}

// Update advances the simulation by one tick when due. While paused only
// explicitly requested single steps run.
func (r *Runner) Update() {
	if r.paused && !r.stepOnce {
		return
	}
	if !r.stepOnce && r.timer != nil && !r.timer.ShouldStep() {
		return
	}
	r.stepOnce = false
	changed := r.grid.Tick()
	r.renderer.UpdateCells(r.grid, changed)
}

// Replace swaps in a freshly built grid and repaints the snapshot.
func (r *Runner) Replace(grid *life.Grid) {
	r.grid = grid
	r.stepOnce = false
	r.renderer.InitGrid(grid)
}

// Grid exposes the driven grid for read-only queries.
func (r *Runner) Grid() *life.Grid { return r.grid }

// TogglePause flips the paused flag.
func (r *Runner) TogglePause() { r.paused = !r.paused }

// Paused reports whether the simulation is paused.
func (r *Runner) Paused() bool { return r.paused }

// Resume clears the paused flag.
func (r *Runner) Resume() { r.paused = false }

// StepOnce requests a single tick on the next Update, even while paused.
func (r *Runner) StepOnce() { r.stepOnce = true }

// SetTPS retargets the tick cadence when a timer is attached.
func (r *Runner) SetTPS(tps int) {
	if r.timer != nil {
		r.timer.SetTPS(tps)
	}
}
