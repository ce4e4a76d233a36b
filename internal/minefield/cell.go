// Package minefield implements the minesweeper board model: hazard placement,
// neighbor counts, the reveal flood-fill, and the textual board table.
// Like the game packages it serves, it has no terminal or logging dependencies.
package minefield

import "strconv"

// MaxCount is the largest neighbor count a clear cell can carry.
const MaxCount = 8

// Cell is a single grid square. It is either a hazard or a clear cell
// annotated with the number of hazards among its neighbors.
type Cell struct {
	hazard bool
	count  uint8
}

// HazardCell returns a hazard (mine) cell.
func HazardCell() Cell {
	return Cell{hazard: true}
}

// ClearCell returns a clear cell with n adjacent hazards.
// n is clamped to [0, MaxCount].
func ClearCell(n int) Cell {
	if n < 0 {
		n = 0
	}
	if n > MaxCount {
		n = MaxCount
	}
	return Cell{count: uint8(n)}
}

// IsHazard reports whether the cell is a hazard.
func (c Cell) IsHazard() bool {
	return c.hazard
}

// Count returns the adjacent hazard count of a clear cell.
// Hazard cells report 0.
func (c Cell) Count() int {
	if c.hazard {
		return 0
	}
	return int(c.count)
}

// String returns "*" for a hazard and the neighbor digit otherwise.
func (c Cell) String() string {
	if c.hazard {
		return "*"
	}
	return strconv.Itoa(int(c.count))
}

// Pos is a (row, col) grid coordinate.
type Pos struct {
	Row int
	Col int
}

// Outcome is the result of a reveal.
type Outcome int

const (
	Continue Outcome = iota // safe cell, game goes on
	Lost                    // a hazard was revealed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
