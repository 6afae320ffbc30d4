package game

import (
	"fmt"

	"github.com/qnkhuat/tetriscore/pkg/mino"
)

// Piece is a tetromino placed on the board. Anchor is the board position of
// the top-left cell of its shape matrix.
type Piece struct {
	Kind   mino.Kind
	Cells  mino.Shape
	Anchor mino.Point
}

func newPiece(k mino.Kind, anchor mino.Point) *Piece {
	return &Piece{Kind: k, Cells: mino.ShapeFor(k), Anchor: anchor}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s", p.Kind, p.Anchor)
}

// Occupied returns the board coordinates covered by the piece, including
// any above the visible field.
func (p Piece) Occupied() []mino.Point {
	cells := p.Cells.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.Anchor)
	}

	return cells
}

func (p *Piece) clone() Piece {
	return Piece{Kind: p.Kind, Cells: p.Cells.Clone(), Anchor: p.Anchor}
}

// Shapes are never edited in place, so translated and rotated candidates may
// share or replace Cells freely.
func (p *Piece) translated(rows, cols int) *Piece {
	return &Piece{Kind: p.Kind, Cells: p.Cells, Anchor: mino.Point{Row: p.Anchor.Row + rows, Col: p.Anchor.Col + cols}}
}

func (p *Piece) withCells(cells mino.Shape) *Piece {
	return &Piece{Kind: p.Kind, Cells: cells, Anchor: p.Anchor}
}
