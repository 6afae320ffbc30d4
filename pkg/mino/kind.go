package mino

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Kind identifies one of the seven tetrominoes. The zero value is None and
// marks an empty cell.
type Kind int

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

var allKinds = [...]Kind{I, O, T, S, Z, J, L}

// Kinds returns the seven playable kinds.
func Kinds() []Kind {
	k := make([]Kind, len(allKinds))
	copy(k, allKinds[:])

	return k
}

func (k Kind) Valid() bool {
	return k >= I && k <= L
}

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "Unknown Kind"
	}
}

var kindColors = [...]tcell.Color{
	None: tcell.ColorDefault,
	I:    tcell.ColorAqua,
	O:    tcell.ColorYellow,
	T:    tcell.ColorPurple,
	S:    tcell.ColorGreen,
	Z:    tcell.ColorRed,
	J:    tcell.ColorBlue,
	L:    tcell.ColorOrange,
}

// Color returns the display color of a kind.
func (k Kind) Color() tcell.Color {
	if k < None || int(k) >= len(kindColors) {
		return tcell.ColorDefault
	}

	return kindColors[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k == None {
		return []byte{}, nil
	}

	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = None
		return nil
	}

	for _, kind := range allKinds {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("mino: unknown kind %q", text)
}
