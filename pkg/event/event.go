package event

import (
	"encoding/json"
	"fmt"
)

type Type int

const (
	TypeDraw Type = iota
	TypeLock
	TypeScore
	TypeGameOver
)

func (t Type) String() string {
	switch t {
	case TypeDraw:
		return "draw"
	case TypeLock:
		return "lock"
	case TypeScore:
		return "score"
	case TypeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

type Interface interface {
	Type() Type
}

type Event struct {
	Session string
}

// Draw asks the presentation layer to redraw from State.
type Draw struct {
	Event
	State interface{}
}

func (Draw) Type() Type { return TypeDraw }

// Lock is sent every time a piece locks.
type Lock struct {
	Event
	Kind    string
	Lines   int
	Awarded int
}

func (Lock) Type() Type { return TypeLock }

type Score struct {
	Event
	Score int
	Lines int
}

func (Score) Type() Type { return TypeScore }

type GameOver struct {
	Event
	Score  int
	Lines  int
	Pieces int
}

func (GameOver) Type() Type { return TypeGameOver }

// Envelope wraps an encoded event with its type for line-delimited output.
type Envelope struct {
	Type string
	Data json.RawMessage
}

// Encode returns the JSON envelope of ev.
func Encode(ev Interface) (json.RawMessage, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", ev.Type(), err)
	}

	env, err := json.Marshal(Envelope{Type: ev.Type().String(), Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s envelope: %w", ev.Type(), err)
	}

	return env, nil
}
