package minefield

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when the board size or
	// hazard count is out of range.
	ErrInvalidConfiguration = errors.New("minefield: invalid configuration")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("minefield: coordinate out of bounds")
)
