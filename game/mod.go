package game

import "fmt"

const BoardSize = 8

// Side is the content of a cell, and the colour of the player owning it.
type Side int

const (
	Empty Side = iota
	Dark
	Light
)

// Opponent returns the other colour. Empty has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return Empty
	}
}

func (s Side) String() string {
	switch s {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return "Empty"
	}
}

// Rune is the single character used to draw a cell.
func (s Side) Rune() rune {
	switch s {
	case Dark:
		return 'X'
	case Light:
		return 'O'
	default:
		return ' '
	}
}

func (s Side) isPlayer() bool {
	return s == Dark || s == Light
}

// Coord addresses a cell, X is the column and Y the row.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Coord) IsOnBoard() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// IsCorner reports whether c is one of the four cells that can never be flipped.
func (c Coord) IsCorner() bool {
	last := BoardSize - 1
	return (c.X == 0 || c.X == last) && (c.Y == 0 || c.Y == last)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// OptionalCoord is a coordinate that may be absent, e.g. the move leading to the
// root of a search tree.
type OptionalCoord struct {
	Coord
	Valid bool
}

func Some(c Coord) OptionalCoord {
	return OptionalCoord{Coord: c, Valid: true}
}

var None = OptionalCoord{}

// Captures lists the opponent cells a move flips.
type Captures []Coord

type StateHash uint64

// Score is derived from a board on demand and never stored alongside it.
type Score struct {
	Dark  int
	Light int
}

// Of returns the piece count of side.
func (s Score) Of(side Side) int {
	switch side {
	case Dark:
		return s.Dark
	case Light:
		return s.Light
	default:
		return 0
	}
}

// Leader returns the side with more pieces, Empty on a tie.
func (s Score) Leader() Side {
	switch {
	case s.Dark > s.Light:
		return Dark
	case s.Light > s.Dark:
		return Light
	default:
		return Empty
	}
}

var directions = [8]Coord{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}
