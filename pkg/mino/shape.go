package mino

import (
	"fmt"
	"strings"
)

// Shape is a square occupancy matrix indexed [row][col].
type Shape [][]bool

var shapes = map[Kind]Shape{
	I: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	O: {
		{true, true},
		{true, true},
	},
	T: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	S: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	J: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	L: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

// ShapeFor returns a copy of the spawn orientation of kind.
func ShapeFor(k Kind) Shape {
	s, ok := shapes[k]
	if !ok {
		panic(fmt.Sprintf("mino: no shape for kind %s", k))
	}

	return s.Clone()
}

// RotateClockwise returns s turned a quarter turn clockwise.
func RotateClockwise(s Shape) Shape {
	n := s.mustSquare()
	r := newShape(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r[j][n-1-i] = s[i][j]
		}
	}

	return r
}

// RotateCounterClockwise returns s turned a quarter turn counter-clockwise.
func RotateCounterClockwise(s Shape) Shape {
	n := s.mustSquare()
	r := newShape(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r[n-1-j][i] = s[i][j]
		}
	}

	return r
}

func newShape(n int) Shape {
	s := make(Shape, n)
	for i := range s {
		s[i] = make([]bool, n)
	}

	return s
}

func (s Shape) mustSquare() int {
	n := len(s)
	for i := range s {
		if len(s[i]) != n {
			panic(fmt.Sprintf("mino: shape is not square: row %d has %d cells, want %d", i, len(s[i]), n))
		}
	}

	return n
}

func (s Shape) Size() int {
	return len(s)
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i := range s {
		c[i] = make([]bool, len(s[i]))
		copy(c[i], s[i])
	}

	return c
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}

	return true
}

// Cells returns the occupied cells relative to the matrix origin, in row
// major order.
func (s Shape) Cells() []Point {
	var cells []Point
	for i := range s {
		for j, filled := range s[i] {
			if filled {
				cells = append(cells, Point{i, j})
			}
		}
	}

	return cells
}

func (s Shape) String() string {
	var b strings.Builder
	for i := range s {
		if i > 0 {
			b.WriteRune('\n')
		}
		for _, filled := range s[i] {
			if filled {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}
