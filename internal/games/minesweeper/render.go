package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

const hudHeight = 3

// boardLines renders the minefield table and splits it into lines.
func (g *Game) boardLines() []string {
	return strings.Split(g.field.Render(), "\n")
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.field == nil {
		g.tooSmall = false
		return
	}
	lines := g.boardLines()
	minW := len(lines[0])
	if len(lines) > 2 && len(lines[2]) > minW {
		minW = len(lines[2])
	}
	minH := len(lines) + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.field == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	lines := g.boardLines()
	boardW := 0
	for _, l := range lines {
		boardW = max(boardW, len(l))
	}
	boardX := max(0, (g.screenW-boardW)/2)
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, lines, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, len(lines)))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and progress counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	titleX := boardX + (boardW-len(g.title))/2
	dst.DrawText(max(0, titleX), 0, g.title)

	hazards := fmt.Sprintf("Hazards: %d", g.field.HazardCount())
	dst.DrawText(boardX, 1, hazards)

	progress := fmt.Sprintf("Cleared: %d/%d", g.score, g.field.SafeCount())
	dst.DrawText(max(boardX, boardX+boardW-len(progress)), 1, progress)
}

// cellOffsets returns the x offset of every cell in a grid row line.
// Cells begin right after each bar except the closing one.
func cellOffsets(line string, size int) []int {
	offsets := make([]int, 0, size)
	for i := 0; i < len(line) && len(offsets) < size; i++ {
		if line[i] == '|' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// renderBoard draws the table, colors revealed cells, and marks the cursor.
func (g *Game) renderBoard(dst *core.Screen, lines []string, boardX, boardY int) {
	for i, line := range lines {
		dst.DrawText(boardX, boardY+i, line)
	}

	size := g.field.Size()
	for r := 0; r < size; r++ {
		y := boardY + 2 + r // header and rule come first
		offsets := cellOffsets(lines[2+r], size)

		for c, off := range offsets {
			x := boardX + off
			cursor := r == g.cursorRow && c == g.cursorCol && !g.lost && !g.won

			if !g.field.IsRevealed(r, c) {
				if cursor {
					dst.SetColored(x, y, '?', core.ColorCursor)
				}
				continue
			}

			cell, _ := g.field.CellAt(r, c)
			color := core.CountColor(cell.Count())
			if cell.IsHazard() {
				color = core.ColorBrightRed
			}
			if cursor {
				color = core.ColorCursor
			}
			dst.DrawTextColored(x, y, cell.String(), color)
		}
	}
}

// renderOverlays draws game over overlays.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	switch {
	case g.lost:
		g.drawOverlay(dst, area, "BOOM!", "You hit a hazard", "Press R for a new board")
	case g.won:
		g.drawOverlay(dst, area, "BOARD CLEARED!", fmt.Sprintf("%d turns", g.turns), "Press R for a new board")
	}
}

// drawOverlay draws a centered text box below the board so the revealed
// layout stays visible.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Bottom(), boxW, boxH)
	if box.Bottom() > dst.Height() {
		// Not enough room below: cover the middle of the board instead.
		box = area.Centered(boxW, boxH)
	}

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Space/Enter: Reveal | R: New board | Q: Quit"
}
