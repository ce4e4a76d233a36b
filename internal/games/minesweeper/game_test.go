package minesweeper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// scripted returns a game over a fixed hazard layout on a large screen.
func scripted(t *testing.T, size int, hazards ...minefield.Pos) *Game {
	t.Helper()
	field, err := minefield.New(size, len(hazards), minefield.FixedPlacer(hazards))
	if err != nil {
		t.Fatalf("minefield.New failed: %v", err)
	}
	g := New("test", "Test", config.BoardConfig{Size: size, Hazards: len(hazards)})
	g.resetWith(field)
	g.Resize(120, 40)
	return g
}

func moveTo(g *Game, row, col int) {
	for g.cursorRow > row {
		g.Step(press(core.ActionUp))
	}
	for g.cursorRow < row {
		g.Step(press(core.ActionDown))
	}
	for g.cursorCol > col {
		g.Step(press(core.ActionLeft))
	}
	for g.cursorCol < col {
		g.Step(press(core.ActionRight))
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	board := config.BoardConfig{Size: 9, Hazards: 10}

	g1 := New("a", "A", board)
	g2 := New("b", "B", board)
	if err := g1.Reset(cfg); err != nil {
		t.Fatal(err)
	}
	if err := g2.Reset(cfg); err != nil {
		t.Fatal(err)
	}

	inputs := []core.Action{core.ActionReveal, core.ActionUp, core.ActionReveal, core.ActionLeft, core.ActionLeft, core.ActionReveal}
	for _, a := range inputs {
		g1.Step(press(a))
		g2.Step(press(a))
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetInvalidBoard(t *testing.T) {
	g := New("bad", "Bad", config.BoardConfig{Size: 2, Hazards: 4})
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("Reset() with full board should fail")
	}
	if g.Snapshot().State != StateNotStarted {
		t.Error("failed Reset should leave game not started")
	}
}

func TestCursorClamped(t *testing.T) {
	g := scripted(t, 3, minefield.Pos{Row: 0, Col: 0})

	if r, c := g.Cursor(); r != 1 || c != 1 {
		t.Fatalf("initial cursor = (%d,%d), expected center", r, c)
	}

	for i := 0; i < 5; i++ {
		g.Step(press(core.ActionUp))
		g.Step(press(core.ActionLeft))
	}
	if r, c := g.Cursor(); r != 0 || c != 0 {
		t.Errorf("cursor = (%d,%d), expected clamp to (0,0)", r, c)
	}

	for i := 0; i < 5; i++ {
		g.Step(press(core.ActionDown))
		g.Step(press(core.ActionRight))
	}
	if r, c := g.Cursor(); r != 2 || c != 2 {
		t.Errorf("cursor = (%d,%d), expected clamp to (2,2)", r, c)
	}
}

func TestRevealHazardLoses(t *testing.T) {
	g := scripted(t, 4, minefield.Pos{Row: 0, Col: 0}, minefield.Pos{Row: 3, Col: 3})

	moveTo(g, 0, 1)
	g.Step(press(core.ActionReveal))
	if g.State().GameOver {
		t.Fatal("revealing a numbered cell should not end the game")
	}

	moveTo(g, 0, 0)
	res := g.Step(press(core.ActionReveal))

	if !res.State.GameOver || res.State.Won {
		t.Errorf("state after hazard = %+v, expected lost", res.State)
	}
	if res.State.Score != 2 {
		t.Errorf("score = %d, expected revealed count before loss (2)", res.State.Score)
	}
	if g.Board().RevealedCount() != 16 {
		t.Errorf("board should be fully revealed after loss, got %d", g.Board().RevealedCount())
	}
	if g.Snapshot().State != StateLost {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	// Input is ignored after game over.
	turns := g.turns
	g.Step(press(core.ActionReveal))
	if g.turns != turns {
		t.Error("turns advanced after game over")
	}
}

func TestCascadeWins(t *testing.T) {
	g := scripted(t, 5, minefield.Pos{Row: 0, Col: 0})

	moveTo(g, 4, 4)
	res := g.Step(press(core.ActionReveal))

	if !res.State.GameOver || !res.State.Won {
		t.Errorf("state = %+v, expected won after full cascade", res.State)
	}
	if res.State.Score != 24 {
		t.Errorf("score = %d, expected 24", res.State.Score)
	}
	if g.Board().IsRevealed(0, 0) {
		t.Error("hazard revealed on win")
	}
}

func TestRenderBoard(t *testing.T) {
	g := scripted(t, 3, minefield.Pos{Row: 1, Col: 1})
	moveTo(g, 0, 0)
	g.Step(press(core.ActionReveal))

	screen := core.NewScreen(120, 40)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Test") {
		t.Error("title missing from render")
	}
	if !strings.Contains(out, "Hazards: 1") {
		t.Error("hazard count missing from HUD")
	}
	if !strings.Contains(out, "Cleared: 1/8") {
		t.Errorf("progress missing from HUD:\n%s", out)
	}

	// Cursor sits on the revealed "1" at (0,0)
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Color == core.ColorCursor {
				found = true
				if c.Rune != '1' {
					t.Errorf("cursor cell rune = %q, expected '1'", c.Rune)
				}
			}
		}
	}
	if !found {
		t.Error("cursor highlight not drawn")
	}
}

func TestRenderLossOverlay(t *testing.T) {
	g := scripted(t, 3, minefield.Pos{Row: 1, Col: 1})
	g.Step(press(core.ActionReveal)) // cursor starts on the hazard

	screen := core.NewScreen(120, 40)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "BOOM!") {
		t.Errorf("loss overlay missing:\n%s", out)
	}
	if !strings.Contains(out, "*") {
		t.Error("hazard should be visible after loss")
	}
}

func TestTooSmall(t *testing.T) {
	g := scripted(t, 9, minefield.Pos{Row: 0, Col: 0})
	g.Resize(10, 5)

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %s, expected paused_small_window", g.Snapshot().State)
	}

	g.Step(press(core.ActionReveal))
	if g.Board().RevealedCount() != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(30, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message missing")
	}

	g.Resize(120, 40)
	if g.Snapshot().State != StatePlaying {
		t.Error("resizing back should resume play")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"minesweeper", "minesweeper_easy", "minesweeper_normal", "minesweeper_hard"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}

	g, err := registry.Create("minesweeper_hard")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 120, ScreenH: 40}); err != nil {
		t.Fatal(err)
	}
	ms := g.(*Game)
	if ms.Board().Size() != 16 || ms.Board().HazardCount() != 40 {
		t.Errorf("hard board = %dx%d/%d", ms.Board().Size(), ms.Board().Size(), ms.Board().HazardCount())
	}
}

func TestSetBoard(t *testing.T) {
	prev := customBoard
	defer SetBoard(prev)

	SetBoard(config.BoardConfig{Size: 4, Hazards: 2})
	g := NewCustom()
	if g.Description() != "4x4, 2 hazards" {
		t.Errorf("Description() = %q", g.Description())
	}
}
