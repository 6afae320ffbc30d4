package game

import "github.com/qnkhuat/tetriscore/pkg/mino"

// Snapshot is a copy of everything the presentation layer draws. It shares
// nothing with the board it was taken from.
type Snapshot struct {
	Rows     int
	Cols     int
	Grid     [][]mino.Kind
	Active   *Piece `json:",omitempty"`
	OnDeck   *Piece `json:",omitempty"`
	Upcoming []mino.Kind
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:     b.rows,
		Cols:     b.cols,
		Grid:     b.Grid(),
		Upcoming: b.Upcoming(),
		Score:    b.score,
		Lines:    b.lines,
		Pieces:   b.pieces,
		GameOver: b.gameOver,
	}

	if b.active != nil {
		p := b.active.clone()
		s.Active = &p
	}
	if b.onDeck != nil {
		p := b.onDeck.clone()
		s.OnDeck = &p
	}

	return s
}
