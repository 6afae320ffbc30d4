package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qnkhuat/tetriscore/pkg/mino"
)

const (
	DefaultRows = 20
	DefaultCols = 10

	// Pieces spawn with their matrix two rows above the visible field.
	spawnRow = -2
	// Every catalog shape occupies only the top two rows of its matrix, so
	// lowering a fresh piece by this much lands it on the two top visible rows.
	entryDrop = 2
)

// LockResult describes a single lock: the kind that locked, the lines it
// cleared, the points awarded for them and the state after the follow-up
// spawn.
type LockResult struct {
	Kind     mino.Kind
	Lines    int
	Awarded  int
	Score    int
	GameOver bool
}

type Option func(*Board)

// WithBag sets the piece supply. Pass a bag built on a deterministic
// shuffler for reproducible games.
func WithBag(bag *mino.Bag) Option {
	return func(b *Board) { b.bag = bag }
}

func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) { b.log = l }
}

// WithLockHandler registers f to be called after every lock, once the next
// piece has been spawned.
func WithLockHandler(f func(LockResult)) Option {
	return func(b *Board) { b.onLock = f }
}

// Board holds the playing field and the pieces in play. It is not safe for
// concurrent use; drivers serialize intents (see Session).
type Board struct {
	rows, cols int

	grid   [][]mino.Kind
	active *Piece
	onDeck *Piece
	bag    *mino.Bag

	score  int
	lines  int
	pieces int

	gameOver bool

	onLock func(LockResult)
	log    zerolog.Logger
}

// NewBoard returns an empty rows by cols board with the first piece on deck.
// Call SpawnNext to put it in play.
func NewBoard(rows, cols int, opts ...Option) *Board {
	if rows < 4 || cols < 4 {
		panic(fmt.Sprintf("game: board of %dx%d cannot hold a piece", rows, cols))
	}

	b := &Board{rows: rows, cols: cols, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}

	if b.bag == nil {
		b.bag = mino.NewBag(nil)
	}

	b.grid = make([][]mino.Kind, rows)
	for r := range b.grid {
		b.grid[r] = make([]mino.Kind, cols)
	}

	b.onDeck = b.draw()

	return b
}

func (b *Board) spawnAnchor() mino.Point {
	return mino.Point{Row: spawnRow, Col: (b.cols - 4) / 2}
}

func (b *Board) draw() *Piece {
	return newPiece(b.bag.Next(), b.spawnAnchor())
}

func (b *Board) mustActive() *Piece {
	if b.active == nil {
		panic("game: no active piece, SpawnNext has not been called")
	}

	return b.active
}

// SpawnNext puts the on-deck piece in play and draws a new one from the bag.
// It returns false when the piece has no room to enter the field: when it
// overlaps a locked cell at its spawn position or on the two top visible rows
// it would fall into. The piece stays active for a final render and the board
// rejects every move from then on.
func (b *Board) SpawnNext() bool {
	if b.gameOver {
		return false
	}

	if b.onDeck == nil {
		b.onDeck = b.draw()
	}

	b.active = b.onDeck
	b.onDeck = b.draw()
	b.pieces++

	if b.overlapsLocked(b.active) || b.overlapsLocked(b.active.translated(entryDrop, 0)) {
		b.gameOver = true

		b.log.Debug().
			Str("kind", b.active.Kind.String()).
			Int("score", b.score).
			Int("lines", b.lines).
			Msg("spawn blocked, game over")

		return false
	}

	b.log.Debug().
		Str("kind", b.active.Kind.String()).
		Str("next", b.onDeck.Kind.String()).
		Msg("spawned piece")

	return true
}

// MoveLeft shifts the active piece one column left if the target is free.
func (b *Board) MoveLeft() bool {
	return b.shift(0, -1)
}

// MoveRight shifts the active piece one column right if the target is free.
func (b *Board) MoveRight() bool {
	return b.shift(0, 1)
}

// MoveDown lowers the active piece by one row. When it cannot move the piece
// is locked, full lines are cleared, the next piece is spawned and false is
// returned. Gravity ticks and soft drops share this path.
func (b *Board) MoveDown() bool {
	b.mustActive()
	if b.gameOver {
		return false
	}

	if b.shift(1, 0) {
		return true
	}

	b.lock()

	return false
}

// HardDrop lowers the active piece as far as it goes and locks it.
func (b *Board) HardDrop() {
	b.mustActive()

	for b.MoveDown() {
	}
}

// RotateClockwise turns the active piece clockwise in place. There are no
// wall kicks: a blocked rotation is rejected.
func (b *Board) RotateClockwise() bool {
	return b.rotate(mino.RotateClockwise)
}

// RotateCounterClockwise is the counter-clockwise twin of RotateClockwise.
func (b *Board) RotateCounterClockwise() bool {
	return b.rotate(mino.RotateCounterClockwise)
}

func (b *Board) shift(rows, cols int) bool {
	p := b.mustActive()
	if b.gameOver {
		return false
	}

	candidate := p.translated(rows, cols)
	if !b.isValidPosition(candidate) {
		return false
	}

	b.active = candidate

	return true
}

// Rotation happens in place around the anchor; a blocked rotation is
// rejected without trying offsets.
func (b *Board) rotate(turn func(mino.Shape) mino.Shape) bool {
	p := b.mustActive()
	if b.gameOver {
		return false
	}

	candidate := p.withCells(turn(p.Cells))
	if !b.isValidPosition(candidate) {
		return false
	}

	b.active = candidate

	return true
}

// isValidPosition reports whether every cell of p is inside the side walls,
// above the floor and on an empty cell. Cells above the field are only
// checked against the side walls.
func (b *Board) isValidPosition(p *Piece) bool {
	for _, c := range p.Occupied() {
		if c.Col < 0 || c.Col >= b.cols || c.Row >= b.rows {
			return false
		}

		if c.Row >= 0 && b.grid[c.Row][c.Col] != mino.None {
			return false
		}
	}

	return true
}

func (b *Board) overlapsLocked(p *Piece) bool {
	for _, c := range p.Occupied() {
		if c.Row < 0 || c.Row >= b.rows || c.Col < 0 || c.Col >= b.cols {
			continue
		}

		if b.grid[c.Row][c.Col] != mino.None {
			return true
		}
	}

	return false
}

func (b *Board) lock() {
	p := b.active

	for _, c := range p.Occupied() {
		// Cells still above the field are dropped
		if c.Row < 0 || c.Row >= b.rows {
			continue
		}

		b.grid[c.Row][c.Col] = p.Kind
	}

	b.active = nil

	cleared := b.clearLines()
	awarded := LineScore(cleared)
	b.score += awarded
	b.lines += cleared

	b.log.Debug().
		Str("kind", p.Kind.String()).
		Int("row", p.Anchor.Row).
		Int("col", p.Anchor.Col).
		Int("cleared", cleared).
		Int("awarded", awarded).
		Int("score", b.score).
		Msg("locked piece")

	ok := b.SpawnNext()

	if b.onLock != nil {
		b.onLock(LockResult{Kind: p.Kind, Lines: cleared, Awarded: awarded, Score: b.score, GameOver: !ok})
	}
}

// clearLines removes every full row in one pass from the bottom up, keeping
// the order of the remaining rows, and refills the top with empty rows.
func (b *Board) clearLines() int {
	w := b.rows - 1
	for r := b.rows - 1; r >= 0; r-- {
		if b.rowFilled(r) {
			continue
		}

		b.grid[w] = b.grid[r]
		w--
	}

	cleared := w + 1
	for ; w >= 0; w-- {
		b.grid[w] = make([]mino.Kind, b.cols)
	}

	return cleared
}

func (b *Board) rowFilled(r int) bool {
	for _, k := range b.grid[r] {
		if k == mino.None {
			return false
		}
	}

	return true
}

// IsGameOverNow reports whether the active piece still has cells above the
// visible field. It is a passive view: every freshly spawned piece satisfies
// it until it has fallen two rows. GameOver is the authoritative signal.
func (b *Board) IsGameOverNow() bool {
	for _, c := range b.mustActive().Occupied() {
		if c.Row < 0 {
			return true
		}
	}

	return false
}

// GameOver reports whether a spawn has been blocked.
func (b *Board) GameOver() bool {
	return b.gameOver
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Grid returns a copy of the locked cells indexed [row][col].
func (b *Board) Grid() [][]mino.Kind {
	g := make([][]mino.Kind, b.rows)
	for r := range b.grid {
		g[r] = make([]mino.Kind, b.cols)
		copy(g[r], b.grid[r])
	}

	return g
}

// Cell returns the locked kind at row, col, or mino.None when empty.
func (b *Board) Cell(row, col int) mino.Kind {
	return b.grid[row][col]
}

// HasActive reports whether a piece has been spawned.
func (b *Board) HasActive() bool {
	return b.active != nil
}

// Active returns a copy of the piece in play. It panics before the first
// SpawnNext.
func (b *Board) Active() Piece {
	return b.mustActive().clone()
}

// OnDeck returns a copy of the piece that spawns next.
func (b *Board) OnDeck() Piece {
	if b.onDeck == nil {
		panic("game: no piece on deck")
	}

	return b.onDeck.clone()
}

// Upcoming returns the kinds left in the bag after the on-deck piece.
func (b *Board) Upcoming() []mino.Kind {
	return b.bag.Remaining()
}

func (b *Board) Score() int  { return b.score }
func (b *Board) Lines() int  { return b.lines }
func (b *Board) Pieces() int { return b.pieces }
