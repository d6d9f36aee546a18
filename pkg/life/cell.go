package life

// Cell is a single grid location. Its identity is its coordinate; all
// cross-cell references are coordinate lookups through the Registry.
type Cell struct {
	coords Coordinate
	state  bool
	// newState holds the provisionally computed next-tick status. Keeping
	// it separate from state stops one cell's update from skewing another
	// cell's neighbour count within the same tick.
	newState bool
	// empty marks a cell as permanently inert: always dead, no neighbours,
	// counted by nobody. Set only during grid construction.
	empty bool
	// conditions is opaque pass-through data (e.g. "temperature": 50.4).
	// No transition rule reads it.
	conditions map[string]float64

	neighborCoords []Coordinate
	aliveNeighbors int
}

// newCell builds a dead, non-empty cell and precomputes its neighbour list.
func newCell(coords Coordinate, gridSize int, conditions map[string]float64) *Cell {
	c := &Cell{coords: coords, conditions: conditions}
	c.neighborCoords = c.computeNeighborCoords(gridSize)
	return c
}

// computeNeighborCoords returns the Moore neighbourhood clipped to grid
// bounds, or nil for an empty cell. Pure function of the receiver's
// coordinate and empty flag.
func (c *Cell) computeNeighborCoords(gridSize int) []Coordinate {
	if c.empty {
		return nil
	}
	return mooreNeighbors(c.coords, gridSize)
}

// markEmpty locks the cell into the inert state. Only grid construction
// calls this; once empty, a cell never leaves the state.
func (c *Cell) markEmpty() {
	c.empty = true
	c.state = false
	c.newState = false
	c.neighborCoords = nil
}

// refilterNeighbors drops neighbours whose cell is empty. Called once on
// every cell after all empty flags are applied, so neighbour lists are
// stable before the first tick.
func (c *Cell) refilterNeighbors(reg *Registry) {
	if len(c.neighborCoords) == 0 {
		return
	}
	kept := c.neighborCoords[:0]
	for _, n := range c.neighborCoords {
		if !reg.cell(n).empty {
			kept = append(kept, n)
		}
	}
	c.neighborCoords = kept
}

// countAliveNeighbors recomputes the alive-neighbour cache. At most 8
// registry lookups.
func (c *Cell) countAliveNeighbors(reg *Registry) {
	c.aliveNeighbors = 0
	for _, n := range c.neighborCoords {
		if reg.cell(n).state {
			c.aliveNeighbors++
		}
	}
}

// computeNextState decides the cell's next state without touching state.
// Standard rules: a live cell survives on 2 or 3 live neighbours, a dead
// cell is born on exactly 3. Empty cells are forced dead.
func (c *Cell) computeNextState(reg *Registry) {
	if c.empty {
		c.newState = false
		c.state = false
		return
	}
	c.countAliveNeighbors(reg)
	if c.state {
		c.newState = c.aliveNeighbors == 2 || c.aliveNeighbors == 3
	} else {
		c.newState = c.aliveNeighbors == 3
	}
}

// commitState promotes newState into state and keeps the active set in
// sync. Insert/remove are idempotent, so an unchanged state is a no-op on
// the set.
func (c *Cell) commitState(active coordSet) {
	c.state = c.newState
	c.newState = false
	if c.state {
		active.add(c.coords)
	} else {
		active.remove(c.coords)
	}
}
