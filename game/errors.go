package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove         = errors.New("illegal move")
	ErrNoLegalMoves        = errors.New("no legal moves")
	ErrUndefinedEvaluation = errors.New("static value requested without a coordinate")
	ErrGameOver            = errors.New("game is over - no moves allowed")
)

type IllegalReason int

const (
	OutOfRange IllegalReason = iota
	Occupied
	NoCaptures
	InvalidSide
)

func (r IllegalReason) String() string {
	switch r {
	case OutOfRange:
		return "out of range"
	case Occupied:
		return "cell is occupied"
	case NoCaptures:
		return "captures nothing"
	case InvalidSide:
		return "invalid side"
	default:
		return "unknown"
	}
}

// IllegalMoveError is returned when a side cannot place a piece on a cell.
type IllegalMoveError struct {
	Coord  Coord
	Side   Side
	Reason IllegalReason
}

func newIllegalMoveError(c Coord, side Side, reason IllegalReason) error {
	return &IllegalMoveError{Coord: c, Side: side, Reason: reason}
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v for %v: %v", e.Coord, e.Side, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
