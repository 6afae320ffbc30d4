package game

import (
	"strings"

	"github.com/qnkhuat/tetriscore/pkg/mino"
)

const (
	RuneEmpty  = '·'
	RuneLocked = '█'
	RuneActive = '▓'
)

// Render draws the visible field top row first, one line per row, with the
// active piece overlaid.
func (b *Board) Render() string {
	return b.Snapshot().Render()
}

// Render draws the snapshot the same way Board.Render does.
func (s Snapshot) Render() string {
	var buf strings.Builder

	overlay := s.activeCells()
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			switch {
			case overlay[mino.Point{Row: r, Col: c}]:
				buf.WriteRune(RuneActive)
			case s.Grid[r][c] != mino.None:
				buf.WriteRune(RuneLocked)
			default:
				buf.WriteRune(RuneEmpty)
			}
		}

		if r < s.Rows-1 {
			buf.WriteRune('\n')
		}
	}

	return buf.String()
}

func (s Snapshot) activeCells() map[mino.Point]bool {
	cells := make(map[mino.Point]bool)
	if s.Active == nil {
		return cells
	}

	for _, c := range s.Active.Occupied() {
		cells[c] = true
	}

	return cells
}

// Cell returns what occupies a visible cell, with the active piece taking
// precedence over locked cells.
func (s Snapshot) Cell(row, col int) (mino.Kind, bool) {
	if s.activeCells()[mino.Point{Row: row, Col: col}] {
		return s.Active.Kind, true
	}

	return s.Grid[row][col], false
}
