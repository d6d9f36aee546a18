package life

import "testing"

func TestNeighborCoordsProperties(t *testing.T) {
	g, err := New(Config{Size: 5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			c := Coordinate{X: x, Y: y}
			cell := g.reg.cell(c)

			seen := map[Coordinate]bool{}
			for _, n := range cell.neighborCoords {
				if n == c {
					t.Fatalf("cell %v lists itself as a neighbor", c)
				}
				if !inBounds(n, 5) {
					t.Fatalf("cell %v has out-of-bounds neighbor %v", c, n)
				}
				if seen[n] {
					t.Fatalf("cell %v lists neighbor %v twice", c, n)
				}
				seen[n] = true
			}
		}
	}
}

func TestNeighborCountsByPosition(t *testing.T) {
	g, err := New(Config{Size: 5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		coord Coordinate
		want  int
	}{
		{Coordinate{0, 0}, 3},
		{Coordinate{4, 4}, 3},
		{Coordinate{0, 2}, 5},
		{Coordinate{2, 4}, 5},
		{Coordinate{2, 2}, 8},
	}
	for _, tc := range cases {
		got := len(g.reg.cell(tc.coord).neighborCoords)
		if got != tc.want {
			t.Errorf("cell %v has %d neighbors, expected %d", tc.coord, got, tc.want)
		}
	}
}

func TestEmptyCellsDroppedFromNeighborLists(t *testing.T) {
	g, err := New(Config{Size: 5, Empty: []Coordinate{{2, 2}}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := len(g.reg.cell(Coordinate{2, 2}).neighborCoords); got != 0 {
		t.Fatalf("empty cell has %d neighbors, expected none", got)
	}

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			cell := g.reg.cell(Coordinate{X: x, Y: y})
			for _, n := range cell.neighborCoords {
				if (n == Coordinate{2, 2}) {
					t.Fatalf("cell %v still lists the empty cell as a neighbor", cell.coords)
				}
			}
		}
	}

	// Neighbors of the empty cell lose exactly one entry.
	if got := len(g.reg.cell(Coordinate{2, 1}).neighborCoords); got != 7 {
		t.Fatalf("cell (2,1) has %d neighbors, expected 7", got)
	}
}

func TestNextStateRules(t *testing.T) {
	// Place n alive neighbors around the center of a 5x5 grid and check
	// the decision for both a dead and an alive center.
	ring := []Coordinate{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	center := Coordinate{2, 2}

	cases := []struct {
		alive     bool
		neighbors int
		want      bool
	}{
		{false, 0, false},
		{false, 1, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
	}

	for _, tc := range cases {
		seeds := append([]Coordinate{}, ring[:tc.neighbors]...)
		if tc.alive {
			seeds = append(seeds, center)
		}
		g, err := New(Config{Size: 5, Alive: seeds})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		cell := g.reg.cell(center)
		cell.computeNextState(g.reg)
		if cell.newState != tc.want {
			t.Errorf("alive=%v neighbors=%d: newState=%v, expected %v",
				tc.alive, tc.neighbors, cell.newState, tc.want)
		}
		if cell.state != tc.alive {
			t.Errorf("alive=%v neighbors=%d: computeNextState mutated state", tc.alive, tc.neighbors)
		}
	}
}

func TestCommitStateIdempotentOnActiveSet(t *testing.T) {
	g, err := New(Config{Size: 5, Alive: []Coordinate{{2, 2}}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cell := g.reg.cell(Coordinate{2, 2})

	// Committing an unchanged alive state keeps the set intact.
	cell.newState = true
	cell.commitState(g.active)
	if len(g.active) != 1 || !g.active.has(Coordinate{2, 2}) {
		t.Fatalf("active set %v, expected exactly {(2,2)}", g.active)
	}

	// Committing death removes it; a second dead commit is a no-op.
	cell.newState = false
	cell.commitState(g.active)
	cell.commitState(g.active)
	if len(g.active) != 0 {
		t.Fatalf("active set %v, expected empty", g.active)
	}
}
