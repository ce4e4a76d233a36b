package minefield

import (
	"fmt"
	"math/rand"
)

// Placer decides where hazards go on a fresh size x size grid.
// Implementations must return exactly count distinct in-bounds positions.
type Placer interface {
	Place(size, count int) ([]Pos, error)
}

// RandomPlacer places hazards by rejection sampling: it draws a uniformly
// random cell index, skips indices that already hold a hazard, and repeats
// until count distinct cells are chosen.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer creates a placer driven by the given generator.
func NewRandomPlacer(rng *rand.Rand) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

// NewSeededPlacer creates a placer with its own generator seeded from seed.
func NewSeededPlacer(seed int64) *RandomPlacer {
	return NewRandomPlacer(rand.New(rand.NewSource(seed)))
}

// Place implements Placer.
func (p *RandomPlacer) Place(size, count int) ([]Pos, error) {
	cells := size * size
	if count < 0 || count >= cells {
		return nil, fmt.Errorf("%w: %d hazards on a %dx%d grid", ErrInvalidConfiguration, count, size, size)
	}

	taken := make([]bool, cells)
	placed := make([]Pos, 0, count)

	for len(placed) < count {
		idx := p.rng.Intn(cells)
		if taken[idx] {
			continue
		}
		taken[idx] = true
		placed = append(placed, Pos{Row: idx / size, Col: idx % size})
	}

	return placed, nil
}

// FixedPlacer places hazards at predetermined positions.
// Useful for scripted boards and deterministic tests.
type FixedPlacer []Pos

// Place implements Placer. The position list must match count exactly,
// stay inside the grid, and contain no duplicates.
func (f FixedPlacer) Place(size, count int) ([]Pos, error) {
	if len(f) != count {
		return nil, fmt.Errorf("%w: %d fixed hazards, want %d", ErrInvalidConfiguration, len(f), count)
	}

	seen := make(map[Pos]bool, len(f))
	for _, p := range f {
		if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
			return nil, fmt.Errorf("%w: fixed hazard (%d, %d) outside %dx%d grid",
				ErrInvalidConfiguration, p.Row, p.Col, size, size)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: duplicate fixed hazard (%d, %d)", ErrInvalidConfiguration, p.Row, p.Col)
		}
		seen[p] = true
	}

	out := make([]Pos, len(f))
	copy(out, f)
	return out, nil
}
