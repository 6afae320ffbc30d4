package game

import (
	"testing"

	"github.com/qnkhuat/tetriscore/pkg/mino"
)

// scriptedShuffle arranges each refill of a bag into the next order in
// orders, repeating the last one. It assumes the bag is filled in Kinds()
// order before shuffling.
type scriptedShuffle struct {
	orders [][]mino.Kind
	n      int
}

func (s *scriptedShuffle) Shuffle(n int, swap func(i, j int)) {
	order := s.orders[min(s.n, len(s.orders)-1)]
	s.n++

	cur := mino.Kinds()
	for i := range order {
		for j := i; j < n; j++ {
			if cur[j] == order[i] {
				if j != i {
					swap(i, j)
					cur[i], cur[j] = cur[j], cur[i]
				}
				break
			}
		}
	}
}

// startWith returns the catalog order with the given kinds moved to the
// front.
func startWith(first ...mino.Kind) []mino.Kind {
	order := append([]mino.Kind{}, first...)
	for _, k := range mino.Kinds() {
		dup := false
		for _, f := range first {
			dup = dup || f == k
		}
		if !dup {
			order = append(order, k)
		}
	}

	return order
}

func scriptedBag(orders ...[]mino.Kind) *mino.Bag {
	return mino.NewBag(&scriptedShuffle{orders: orders})
}

func newTestBoard(t *testing.T, orders ...[]mino.Kind) *Board {
	t.Helper()

	return NewBoard(DefaultRows, DefaultCols, WithBag(scriptedBag(orders...)))
}

// fillRow locks every cell of row except the listed columns.
func fillRow(b *Board, row int, except ...int) {
	for c := 0; c < b.cols; c++ {
		skip := false
		for _, e := range except {
			skip = skip || e == c
		}
		if !skip {
			b.grid[row][c] = mino.Z
		}
	}
}

func emptyGrid(rows, cols int) [][]mino.Kind {
	g := make([][]mino.Kind, rows)
	for r := range g {
		g[r] = make([]mino.Kind, cols)
	}

	return g
}

// activeOverlaps reports whether a visible cell of the active piece sits on a
// locked cell.
func activeOverlaps(b *Board) bool {
	if b.active == nil {
		return false
	}

	for _, c := range b.active.Occupied() {
		if c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols && b.grid[c.Row][c.Col] != mino.None {
			return true
		}
	}

	return false
}
