package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// fakeGame records the turns and resizes it receives.
type fakeGame struct {
	resets   int
	steps    []core.Action
	resized  [2]int
	over     bool
	resetErr error
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) error {
	if g.resetErr != nil {
		return g.resetErr
	}
	g.resets++
	g.over = false
	return nil
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	for a := range in.Actions {
		g.steps = append(g.steps, a)
		if a == core.ActionReveal {
			g.over = true
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{GameOver: g.over}
}

func (g *fakeGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

var _ registry.Game = (*fakeGame)(nil)

func newTestModel(t *testing.T, g *fakeGame) Model {
	t.Helper()
	m, err := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 7}, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelOneStepPerKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	if g.resets != 1 {
		t.Fatalf("resets = %d, expected 1 on start", g.resets)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(m, runeKey('x'))
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})

	if len(g.steps) != 2 || g.steps[0] != core.ActionUp || g.steps[1] != core.ActionLeft {
		t.Errorf("steps = %v, expected [Up Left]", g.steps)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m = send(m, runeKey('r'))
	if g.resets != 1 {
		t.Error("restart should be ignored while playing")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(m, runeKey('r'))
	if g.resets != 2 {
		t.Errorf("resets = %d, expected a new board after game over", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("game state should be refreshed after restart")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Error("resize should not deal a new board")
	}
	if g.resized != [2]int{100, 30 - helpHeight} {
		t.Errorf("resized = %v", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	view := m.View()
	if !strings.Contains(view, "FAKE") {
		t.Error("game render missing from view")
	}
	if !strings.Contains(view, "reveal") {
		t.Error("help line missing from view")
	}
}

func TestNewModelResetError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewModel(&fakeGame{resetErr: boom}, core.DefaultConfig(), nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, expected wrapped reset error", err)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.SetColored(1, 1, '9', core.ColorBrightRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "9") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should emit one line per row, got %q", out)
	}
}
