package event

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Action is one intent pushed by the presentation layer.
type Action int

const (
	ActionUnknown Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionTick
)

var ErrUnknownAction = errors.New("unknown action")

var actionNames = map[Action]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionSoftDrop:  "down",
	ActionHardDrop:  "drop",
	ActionRotateCW:  "rotate-cw",
	ActionRotateCCW: "rotate-ccw",
	ActionTick:      "tick",
}

// Script keys follow the vi style bindings of the terminal client.
var actionKeys = map[rune]Action{
	'h': ActionMoveLeft,
	'l': ActionMoveRight,
	'j': ActionSoftDrop,
	'k': ActionHardDrop,
	'x': ActionRotateCW,
	'z': ActionRotateCCW,
	'.': ActionTick,
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return "unknown"
}

// ParseAction accepts an action name ("left", "rotate-cw", ...) or a single
// script key.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for a, name := range actionNames {
		if s == name {
			return a, nil
		}
	}

	if r := []rune(s); len(r) == 1 {
		if a, ok := actionKeys[r[0]]; ok {
			return a, nil
		}
	}

	return ActionUnknown, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// MaxRepeat bounds the repeat count accepted in front of a script key.
const MaxRepeat = 10000

var ErrRepeatCount = errors.New("repeat count out of range")

// ParseScript reads a compact sequence of script keys, e.g. "hhx.k".
// Whitespace is ignored. A key may be prefixed by an ASCII repeat count of at
// most MaxRepeat: "3h".
func ParseScript(script string) ([]Action, error) {
	var (
		actions []Action
		repeat  int
	)

	for i, r := range script {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			repeat = repeat*10 + int(r-'0')
			if repeat > MaxRepeat {
				return nil, fmt.Errorf("script offset %d: %w: exceeds %d", i, ErrRepeatCount, MaxRepeat)
			}
			continue
		}

		a, ok := actionKeys[unicode.ToLower(r)]
		if !ok {
			return nil, fmt.Errorf("script offset %d: %w: %q", i, ErrUnknownAction, r)
		}

		if repeat == 0 {
			repeat = 1
		}
		for ; repeat > 0; repeat-- {
			actions = append(actions, a)
		}
	}

	if repeat > 0 {
		return nil, fmt.Errorf("script ends with dangling repeat count %d", repeat)
	}

	return actions, nil
}
