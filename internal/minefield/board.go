package minefield

import "fmt"

// Board is a square minesweeper grid plus the set of cells the player has
// uncovered. The grid is fixed at construction; only the revealed set changes.
type Board struct {
	size     int
	hazards  int
	cells    [][]Cell
	revealed [][]bool
	shown    int // number of revealed coordinates
}

// New builds a size x size board with hazards placed by placer.
// Returns ErrInvalidConfiguration if size < 1 or hazards is not in [0, size²).
func New(size, hazards int, placer Placer) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d must be at least 1", ErrInvalidConfiguration, size)
	}
	if hazards < 0 || hazards >= size*size {
		return nil, fmt.Errorf("%w: hazard count %d must be in [0, %d)", ErrInvalidConfiguration, hazards, size*size)
	}
	if placer == nil {
		return nil, fmt.Errorf("%w: no hazard placer", ErrInvalidConfiguration)
	}

	positions, err := placer.Place(size, hazards)
	if err != nil {
		return nil, err
	}
	if len(positions) != hazards {
		return nil, fmt.Errorf("%w: placer returned %d hazards, want %d", ErrInvalidConfiguration, len(positions), hazards)
	}

	b := &Board{
		size:     size,
		hazards:  hazards,
		cells:    make([][]Cell, size),
		revealed: make([][]bool, size),
	}
	for r := 0; r < size; r++ {
		b.cells[r] = make([]Cell, size)
		b.revealed[r] = make([]bool, size)
	}

	for _, p := range positions {
		if !b.inBounds(p.Row, p.Col) || b.cells[p.Row][p.Col].IsHazard() {
			return nil, fmt.Errorf("%w: placer returned bad hazard (%d, %d)", ErrInvalidConfiguration, p.Row, p.Col)
		}
		b.cells[p.Row][p.Col] = HazardCell()
	}

	b.assignCounts()
	return b, nil
}

// NewRandom builds a board with hazards placed by a generator seeded from seed.
func NewRandom(size, hazards int, seed int64) (*Board, error) {
	return New(size, hazards, NewSeededPlacer(seed))
}

// assignCounts annotates every clear cell with its neighboring hazard count.
func (b *Board) assignCounts() {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c].IsHazard() {
				continue
			}
			b.cells[r][c] = ClearCell(b.hazardNeighbors(r, c))
		}
	}
}

// hazardNeighbors counts hazards among the up to 8 cells around (row, col).
func (b *Board) hazardNeighbors(row, col int) int {
	n := 0
	b.eachNeighbor(row, col, func(r, c int) {
		if b.cells[r][c].IsHazard() {
			n++
		}
	})
	return n
}

// eachNeighbor calls fn for every in-bounds cell adjacent to (row, col),
// including diagonals. Edges clamp; there is no wraparound.
func (b *Board) eachNeighbor(row, col int, fn func(r, c int)) {
	for r := max(0, row-1); r <= min(b.size-1, row+1); r++ {
		for c := max(0, col-1); c <= min(b.size-1, col+1); c++ {
			if r == row && c == col {
				continue
			}
			fn(r, c)
		}
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) boundsError(row, col int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, b.size, b.size)
}

// Size returns the grid dimension.
func (b *Board) Size() int {
	return b.size
}

// HazardCount returns the number of hazards on the board.
func (b *Board) HazardCount() int {
	return b.hazards
}

// RevealedCount returns how many coordinates have been uncovered.
func (b *Board) RevealedCount() int {
	return b.shown
}

// SafeCount returns the number of clear cells, i.e. the reveals needed to win.
func (b *Board) SafeCount() int {
	return b.size*b.size - b.hazards
}

// Won reports whether every clear cell has been uncovered.
// Only meaningful while no hazard has been revealed.
func (b *Board) Won() bool {
	return b.shown == b.SafeCount()
}

// CellAt returns the cell at (row, col) regardless of whether it is revealed.
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.inBounds(row, col) {
		return Cell{}, b.boundsError(row, col)
	}
	return b.cells[row][col], nil
}

// IsRevealed reports whether (row, col) has been uncovered.
// Out-of-bounds coordinates are never revealed.
func (b *Board) IsRevealed(row, col int) bool {
	if !b.inBounds(row, col) {
		return false
	}
	return b.revealed[row][col]
}

// Reveal uncovers (row, col).
//
// A hazard yields Lost and reveals nothing else. A clear cell with a nonzero
// count yields Continue. A zero cell cascades: every connected zero cell and
// its bordering numbered cells are uncovered. Revealing an already uncovered
// cell is a no-op with the same outcome.
//
// Returns ErrOutOfBounds without touching the board when the coordinate is
// outside the grid.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	if !b.inBounds(row, col) {
		return Continue, b.boundsError(row, col)
	}

	b.mark(row, col)

	cell := b.cells[row][col]
	if cell.IsHazard() {
		return Lost, nil
	}
	if cell.Count() > 0 {
		return Continue, nil
	}

	b.cascade(Pos{Row: row, Col: col})
	return Continue, nil
}

// cascade flood-fills outward from a zero cell using an explicit stack.
// Cells are marked before they are pushed so each is visited once.
func (b *Board) cascade(start Pos) {
	stack := []Pos{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.eachNeighbor(p.Row, p.Col, func(r, c int) {
			if b.revealed[r][c] {
				return
			}
			b.mark(r, c)
			if b.cells[r][c].Count() == 0 && !b.cells[r][c].IsHazard() {
				stack = append(stack, Pos{Row: r, Col: c})
			}
		})
	}
}

// RevealAll uncovers the whole board. Used to show the layout after a loss.
func (b *Board) RevealAll() {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			b.mark(r, c)
		}
	}
}

func (b *Board) mark(row, col int) {
	if b.revealed[row][col] {
		return
	}
	b.revealed[row][col] = true
	b.shown++
}
