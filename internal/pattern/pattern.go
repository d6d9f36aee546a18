// Package pattern provides named seed patterns for building grids.
package pattern

import (
	"github.com/Pseudonium/Cell-simulator/pkg/core"
	"github.com/Pseudonium/Cell-simulator/pkg/life"
)

// Options parameterizes pattern construction. Seed and Density only
// matter to randomized patterns.
type Options struct {
	Size    int
	Seed    int64
	Density float64
}

// Pattern is a grid seed: the initially alive cells, the permanently
// empty ones, and optional per-cell conditions.
type Pattern struct {
	Alive      []life.Coordinate
	Empty      []life.Coordinate
	Conditions map[life.Coordinate]map[string]float64
}

// GridConfig converts the pattern into a grid configuration.
func (p Pattern) GridConfig(size int) life.Config {
	return life.Config{
		Size:       size,
		Alive:      p.Alive,
		Empty:      p.Empty,
		Conditions: p.Conditions,
	}
}

// Factory constructs a Pattern from the provided options. Factories never
// clamp or drop coordinates: a pattern that does not fit the requested
// grid fails later in life.New with ErrInvalidCoordinate.
type Factory func(o Options) Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

func init() {
	Register("block", func(Options) Pattern {
		return Pattern{Alive: []life.Coordinate{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}}}
	})

	Register("blinker", func(Options) Pattern {
		return Pattern{Alive: []life.Coordinate{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}}
	})

	Register("glider", func(Options) Pattern {
		return Pattern{Alive: []life.Coordinate{
			{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
		}}
	})

	// The classic Gosper glider gun; needs a grid at least 37 cells wide.
	Register("gosper-gun", func(Options) Pattern {
		return Pattern{Alive: []life.Coordinate{
			{X: 25, Y: 1}, {X: 23, Y: 2}, {X: 25, Y: 2}, {X: 13, Y: 3},
			{X: 14, Y: 3}, {X: 21, Y: 3}, {X: 22, Y: 3}, {X: 35, Y: 3},
			{X: 36, Y: 3}, {X: 12, Y: 4}, {X: 16, Y: 4}, {X: 21, Y: 4},
			{X: 22, Y: 4}, {X: 35, Y: 4}, {X: 36, Y: 4}, {X: 1, Y: 5},
			{X: 2, Y: 5}, {X: 11, Y: 5}, {X: 17, Y: 5}, {X: 21, Y: 5},
			{X: 22, Y: 5}, {X: 1, Y: 6}, {X: 2, Y: 6}, {X: 11, Y: 6},
			{X: 15, Y: 6}, {X: 17, Y: 6}, {X: 18, Y: 6}, {X: 23, Y: 6},
			{X: 25, Y: 6}, {X: 11, Y: 7}, {X: 17, Y: 7}, {X: 25, Y: 7},
			{X: 12, Y: 8}, {X: 16, Y: 8}, {X: 13, Y: 9}, {X: 14, Y: 9},
		}}
	})

	// Uniform random fill at the requested density.
	Register("random", func(o Options) Pattern {
		rng := core.NewRNG(o.Seed)
		var alive []life.Coordinate
		for x := 0; x < o.Size; x++ {
			for y := 0; y < o.Size; y++ {
				if rng.Chance(o.Density) {
					alive = append(alive, life.Coordinate{X: x, Y: y})
				}
			}
		}
		return Pattern{Alive: alive}
	})

	// Random fill enclosed by a wall of empty cells along the border.
	Register("courtyard", func(o Options) Pattern {
		rng := core.NewRNG(o.Seed)
		var alive, empty []life.Coordinate
		for x := 0; x < o.Size; x++ {
			for y := 0; y < o.Size; y++ {
				c := life.Coordinate{X: x, Y: y}
				if x == 0 || y == 0 || x == o.Size-1 || y == o.Size-1 {
					empty = append(empty, c)
					continue
				}
				if rng.Chance(o.Density) {
					alive = append(alive, c)
				}
			}
		}
		return Pattern{Alive: alive, Empty: empty}
	})
}
