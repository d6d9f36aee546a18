package life

import "errors"

// ErrInvalidCoordinate reports a seed, empty-cell, or conditions coordinate
// outside the grid bounds. Raised only during construction; a failed New
// produces no grid.
var ErrInvalidCoordinate = errors.New("coordinate outside grid bounds")

// ErrUnknownCoordinate reports a query for a coordinate with no backing
// cell. Cannot occur for in-range coordinates of a constructed grid.
var ErrUnknownCoordinate = errors.New("no cell at coordinate")
