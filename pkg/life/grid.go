// Package life implements a Game of Life variant on a fixed square grid.
// Cells may be flagged "empty" at construction: such cells are permanently
// dead, have no neighbours, and count towards nobody's neighbour total.
// Each tick only evaluates the frontier — the currently alive cells and
// their neighbours — since nothing else can change.
package life

import "fmt"

// Config describes a grid to build. Alive seeds the initially living
// cells, Empty the permanently inert ones, and Conditions attaches opaque
// per-cell scalar data. All coordinates must lie in [0,Size)².
type Config struct {
	Size       int
	Alive      []Coordinate
	Empty      []Coordinate
	Conditions map[Coordinate]map[string]float64
}

// Grid owns the full coordinate space of a simulation and drives the
// two-phase tick. It is not safe for concurrent use; the driver must not
// re-enter Tick.
type Grid struct {
	size int
	reg  *Registry
	// active tracks coordinates that are alive and not empty. Maintained
	// incrementally by commitState.
	active coordSet
	// sim is the frontier evaluated this tick: active cells plus their
	// non-empty neighbours. Rebuilt from scratch every tick so neighbours
	// of newly active cells are always captured.
	sim coordSet
}

// New validates cfg and constructs a fully initialised grid. Any alive,
// empty, or conditions coordinate outside the grid fails with
// ErrInvalidCoordinate and no grid is produced; seeds are never silently
// clamped or dropped.
func New(cfg Config) (*Grid, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("grid size %d: %w", cfg.Size, ErrInvalidCoordinate)
	}
	for _, c := range cfg.Alive {
		if !inBounds(c, cfg.Size) {
			return nil, fmt.Errorf("alive seed %v: %w", c, ErrInvalidCoordinate)
		}
	}
	for _, c := range cfg.Empty {
		if !inBounds(c, cfg.Size) {
			return nil, fmt.Errorf("empty cell %v: %w", c, ErrInvalidCoordinate)
		}
	}
	for c := range cfg.Conditions {
		if !inBounds(c, cfg.Size) {
			return nil, fmt.Errorf("conditions key %v: %w", c, ErrInvalidCoordinate)
		}
	}

	g := &Grid{
		size:   cfg.Size,
		reg:    newRegistry(cfg.Size),
		active: make(coordSet),
		sim:    make(coordSet),
	}

	for x := 0; x < cfg.Size; x++ {
		for y := 0; y < cfg.Size; y++ {
			c := Coordinate{X: x, Y: y}
			g.reg.put(newCell(c, cfg.Size, cfg.Conditions[c]))
		}
	}

	// Empty flags go first and neighbour lists are refiltered before any
	// cell comes alive, so the lists are stable from tick zero.
	for _, c := range cfg.Empty {
		g.reg.cell(c).markEmpty()
	}
	for _, cell := range g.reg.cells {
		cell.refilterNeighbors(g.reg)
	}

	// Seeds go through the same commit path as runtime transitions, which
	// keeps the active-set bookkeeping consistent from the start. A seed
	// that is also flagged empty stays empty.
	for _, c := range cfg.Alive {
		cell := g.reg.cell(c)
		if cell.empty {
			continue
		}
		cell.newState = true
		cell.commitState(g.active)
	}

	return g, nil
}

// simFrontier rebuilds the set of cells to evaluate this tick. Expansion
// uses the raw Moore-neighbourhood rule rather than each cell's filtered
// neighbour list so newly relevant coordinates are always reached; empty
// coordinates are skipped since they are forced dead regardless.
func (g *Grid) simFrontier() {
	clear(g.sim)
	for c := range g.active {
		g.sim.add(c)
		for _, n := range mooreNeighbors(c, g.size) {
			if !g.reg.cell(n).empty {
				g.sim.add(n)
			}
		}
	}
}

// Tick advances the simulation one step and returns the coordinates that
// were evaluated. Callers re-read each one's state to find actual changes;
// cells outside the returned set cannot have changed. The two phases are
// never interleaved: phase A only reads states, phase B only writes
// already-computed results, so ordering within each phase is irrelevant.
func (g *Grid) Tick() []Coordinate {
	g.simFrontier()
	for c := range g.sim {
		g.reg.cell(c).computeNextState(g.reg)
	}
	for c := range g.sim {
		g.reg.cell(c).commitState(g.active)
	}
	out := make([]Coordinate, 0, len(g.sim))
	for c := range g.sim {
		out = append(out, c)
	}
	return out
}

// Size returns the grid's side length in cells.
func (g *Grid) Size() int { return g.size }

// State reports whether the cell at c is alive. Out-of-range coordinates
// fail with ErrUnknownCoordinate.
func (g *Grid) State(c Coordinate) (bool, error) {
	cell := g.reg.cell(c)
	if cell == nil {
		return false, fmt.Errorf("query %v: %w", c, ErrUnknownCoordinate)
	}
	return cell.state, nil
}

// IsEmpty reports whether the cell at c is permanently inert. Coordinates
// outside the grid are not cells at all and report false.
func (g *Grid) IsEmpty(c Coordinate) bool {
	cell := g.reg.cell(c)
	return cell != nil && cell.empty
}

// Conditions returns the opaque per-cell data attached at construction,
// or nil when none was supplied or c is out of range. Callers must not
// mutate the returned map.
func (g *Grid) Conditions(c Coordinate) map[string]float64 {
	cell := g.reg.cell(c)
	if cell == nil {
		return nil
	}
	return cell.conditions
}

// ActiveCount returns the number of currently alive, non-empty cells.
func (g *Grid) ActiveCount() int { return len(g.active) }
