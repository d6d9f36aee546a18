package life

import "fmt"

// Coordinate identifies a cell position on the grid, 0-indexed from the
// top-left corner. Coordinates are value types: equality and map-key
// hashing work out of the box.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)" for error messages and logs.
func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// inBounds reports whether c lies within a size×size grid.
func inBounds(c Coordinate, size int) bool {
	return 0 <= c.X && c.X < size && 0 <= c.Y && c.Y < size
}

// mooreNeighbors returns the Moore neighbourhood of c clipped to grid
// bounds: up to 8 coordinates, never c itself.
func mooreNeighbors(c Coordinate, size int) []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if inBounds(n, size) {
				out = append(out, n)
			}
		}
	}
	return out
}

// coordSet is a set of coordinates with idempotent add/remove.
type coordSet map[Coordinate]struct{}

func (s coordSet) add(c Coordinate)      { s[c] = struct{}{} }
func (s coordSet) remove(c Coordinate)   { delete(s, c) }
func (s coordSet) has(c Coordinate) bool { _, ok := s[c]; return ok }
