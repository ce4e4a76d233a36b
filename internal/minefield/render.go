package minefield

import (
	"fmt"
	"strconv"
	"strings"
)

// hiddenCell is drawn for coordinates the player has not uncovered.
const hiddenCell = " "

// Render returns the board as a text table.
//
// The first line holds column indices, followed by a dashed rule, one line per
// grid row (row index, then each cell between bars), and a closing rule.
// Each column is padded to its widest entry. Revealed hazards show "*",
// revealed clear cells their digit (zero included), hidden cells a blank.
func (b *Board) Render() string {
	visible := make([][]string, b.size)
	widths := make([]int, b.size)
	for c := 0; c < b.size; c++ {
		widths[c] = len(strconv.Itoa(c))
	}

	for r := 0; r < b.size; r++ {
		visible[r] = make([]string, b.size)
		for c := 0; c < b.size; c++ {
			v := hiddenCell
			if b.revealed[r][c] {
				v = b.cells[r][c].String()
			}
			visible[r][c] = v
			widths[c] = max(widths[c], len(v))
		}
	}

	rowW := len(strconv.Itoa(b.size - 1))

	var sb strings.Builder

	// Column header
	sb.WriteString(strings.Repeat(" ", rowW+2))
	for c := 0; c < b.size; c++ {
		if c > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%-*d", widths[c], c)
	}
	sb.WriteString("  \n")

	lines := make([]string, b.size)
	for r := 0; r < b.size; r++ {
		cells := make([]string, b.size)
		for c := 0; c < b.size; c++ {
			cells[c] = fmt.Sprintf("%-*s", widths[c], visible[r][c])
		}
		lines[r] = fmt.Sprintf("%-*d |", rowW, r) + strings.Join(cells, " |") + " |"
	}

	rule := strings.Repeat("-", len(lines[0]))
	sb.WriteString(rule)
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteByte('\n')
	sb.WriteString(rule)

	return sb.String()
}

// String implements fmt.Stringer using Render.
func (b *Board) String() string {
	return b.Render()
}
