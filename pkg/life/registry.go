package life

// Registry is the grid-owned coordinate→cell table. It owns every cell in
// the coordinate space; cells reference each other only by coordinate
// lookups through it, never by pointer. Its lifecycle is tied 1:1 to the
// Grid that built it, so multiple grids in one process never share state.
type Registry struct {
	size  int
	cells map[Coordinate]*Cell
}

func newRegistry(size int) *Registry {
	return &Registry{size: size, cells: make(map[Coordinate]*Cell, size*size)}
}

// cell returns the cell at c. The table is total over the coordinate
// space, so lookups for in-bounds coordinates never miss.
func (r *Registry) cell(c Coordinate) *Cell { return r.cells[c] }

func (r *Registry) put(c *Cell) { r.cells[c.coords] = c }
