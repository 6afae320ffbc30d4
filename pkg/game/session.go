package game

import (
	"context"
	"errors"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"

	"github.com/qnkhuat/tetriscore/pkg/event"
	"github.com/qnkhuat/tetriscore/pkg/mino"
)

const (
	IntentQueueSize = 16
	EventQueueSize  = 64
)

var ErrRunning = errors.New("session is running")

type SessionConfig struct {
	// Name identifies the session in events and logs. A random pet name is
	// used when empty.
	Name string

	Rows int
	Cols int

	// Gravity is the tick interval. Zero disables ticks; intents still
	// apply.
	Gravity time.Duration

	// NewBag supplies the bag for each new board. Defaults to a randomly
	// seeded bag.
	NewBag func() *mino.Bag

	Logger *zerolog.Logger
}

// Session drives one board from a single goroutine, merging intents pushed
// by the presentation layer with gravity ticks from its clock. Board state
// leaves the session only as events.
type Session struct {
	Name  string
	Clock *Clock

	board   *Board
	cfg     SessionConfig
	intents chan event.Action
	events  chan event.Interface
	log     zerolog.Logger

	ctx     context.Context
	running bool
	mu      sync.Mutex
}

func NewSession(cfg SessionConfig) *Session {
	if cfg.Name == "" {
		cfg.Name = petname.Generate(2, "-")
	}
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = DefaultCols
	}
	if cfg.NewBag == nil {
		cfg.NewBag = func() *mino.Bag { return mino.NewBag(nil) }
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	s := &Session{
		Name:    cfg.Name,
		Clock:   NewClock(cfg.Gravity),
		cfg:     cfg,
		intents: make(chan event.Action, IntentQueueSize),
		events:  make(chan event.Interface, EventQueueSize),
		log:     log.With().Str("session", cfg.Name).Logger(),
	}

	s.newBoard()

	return s
}

func (s *Session) newBoard() {
	s.board = NewBoard(s.cfg.Rows, s.cfg.Cols,
		WithBag(s.cfg.NewBag()),
		WithLogger(s.log),
		WithLockHandler(s.handleLock))
	s.board.SpawnNext()
	s.Clock.Reset()
}

// Events returns the channel events are delivered on. It must be drained
// while Run is active.
func (s *Session) Events() <-chan event.Interface {
	return s.events
}

// Push queues an intent for the running session.
func (s *Session) Push(ctx context.Context, a event.Action) error {
	select {
	case s.intents <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Board returns the session's board. It must not be used while Run is
// active.
func (s *Session) Board() *Board {
	return s.board
}

// Restart discards the board and starts a new game.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}

	s.newBoard()
	s.log.Info().Msg("restarted")

	return nil
}

// Run applies intents and gravity ticks until the game is over or ctx is
// done. It returns nil on game over and ctx.Err() on cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	s.ctx = ctx
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.ctx = nil
		s.mu.Unlock()
	}()

	ticks, stop := s.Clock.C()
	defer stop()

	s.log.Info().Dur("gravity", s.Clock.Interval).Msg("session started")

	if !s.board.GameOver() {
		s.emit(event.Draw{Event: s.ev(), State: s.board.Snapshot()})
	}

	for !s.board.GameOver() {
		select {
		case <-ctx.Done():
			s.log.Info().Err(ctx.Err()).Msg("session stopped")
			return ctx.Err()
		case <-ticks:
			if !s.Clock.Tick() {
				continue
			}
			s.apply(event.ActionTick)
		case a := <-s.intents:
			s.apply(a)
		}
	}

	b := s.board
	s.emit(event.GameOver{Event: s.ev(), Score: b.Score(), Lines: b.Lines(), Pieces: b.Pieces()})
	s.log.Info().Int("score", b.Score()).Int("lines", b.Lines()).Int("pieces", b.Pieces()).Msg("game over")

	return nil
}

func (s *Session) apply(a event.Action) {
	if !s.board.Apply(a) && a != event.ActionTick && a != event.ActionSoftDrop {
		s.log.Debug().Str("action", a.String()).Msg("rejected")
		return
	}

	s.emit(event.Draw{Event: s.ev(), State: s.board.Snapshot()})
}

func (s *Session) handleLock(r LockResult) {
	s.emit(event.Lock{Event: s.ev(), Kind: r.Kind.String(), Lines: r.Lines, Awarded: r.Awarded})

	if r.Awarded > 0 {
		s.emit(event.Score{Event: s.ev(), Score: r.Score, Lines: s.board.Lines()})
	}
}

func (s *Session) ev() event.Event {
	return event.Event{Session: s.Name}
}

// emit blocks until the event is queued or the run context is done. Outside
// Run events are dropped.
func (s *Session) emit(ev event.Interface) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if ctx == nil {
		return
	}

	select {
	case s.events <- ev:
	case <-ctx.Done():
	}
}
