package minesweeper

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
	StateNotStarted  GameStateType = "not_started"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Size      int
	Hazards   int
	Revealed  int
	Score     int
	Turns     int
	CursorRow int
	CursorCol int
	Board     string // text table as the player sees it
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.field == nil {
		return Snapshot{State: StateNotStarted}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.lost:
		state = StateLost
	}

	return Snapshot{
		Size:      g.field.Size(),
		Hazards:   g.field.HazardCount(),
		Revealed:  g.field.RevealedCount(),
		Score:     g.score,
		Turns:     g.turns,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Board:     g.field.Render(),
		State:     state,
	}
}
