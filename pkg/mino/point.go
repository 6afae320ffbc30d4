package mino

import (
	"strconv"
	"strings"
)

// Point is a board coordinate. Row grows downward; rows above the visible
// field are negative.
type Point struct {
	Row, Col int
}

func (p Point) Add(o Point) Point { return Point{p.Row + o.Row, p.Col + o.Col} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.Row))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Col))
	b.WriteRune(')')

	return b.String()
}
