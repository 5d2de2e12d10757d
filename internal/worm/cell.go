// Package worm implements the worm game: a worm crawls over a grid, eats
// apples and grows, and the session ends when it leaves the grid or bites
// its own tail. The package is pure logic; drawing, frame scheduling and
// touch input come from the host.
package worm

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns c offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var opposites = [...]Direction{
	DirUp:    DirDown,
	DirRight: DirLeft,
	DirDown:  DirUp,
	DirLeft:  DirRight,
}

var deltas = [...]Cell{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the one-cell offset of a move in this direction.
func (d Direction) Delta() Cell {
	return deltas[d]
}

// Conflicts reports whether turning from d to next is refused: going
// straight on or reversing.
func (d Direction) Conflicts(next Direction) bool {
	return next == d || next == d.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "down", "left" or "right".
func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
