package game

// EvaluateMove returns the cells side would flip by playing c. The move is legal
// iff the returned error is nil, which always comes with at least one capture.
func EvaluateMove(b *Board, side Side, c Coord) (Captures, error) {
	if !side.isPlayer() {
		return nil, newIllegalMoveError(c, side, InvalidSide)
	}
	if !c.IsOnBoard() {
		return nil, newIllegalMoveError(c, side, OutOfRange)
	}
	if b.At(c) != Empty {
		return nil, newIllegalMoveError(c, side, Occupied)
	}

	opponent := side.Opponent()
	var captures Captures
	for _, dir := range directions {
		next := Coord{c.X + dir.X, c.Y + dir.Y}
		run := 0
		for next.IsOnBoard() && b.At(next) == opponent {
			next = Coord{next.X + dir.X, next.Y + dir.Y}
			run++
		}
		// The run only counts when it is closed by one of our own pieces
		if run == 0 || !next.IsOnBoard() || b.At(next) != side {
			continue
		}
		for i := 1; i <= run; i++ {
			captures = append(captures, Coord{c.X + dir.X*i, c.Y + dir.Y*i})
		}
	}

	if len(captures) == 0 {
		return nil, newIllegalMoveError(c, side, NoCaptures)
	}
	return captures, nil
}

// ApplyMove places a piece for side on c and flips the captured cells. The board is
// left untouched when the move is illegal.
func ApplyMove(b *Board, side Side, c Coord) (Captures, error) {
	captures, err := EvaluateMove(b, side, c)
	if err != nil {
		return nil, err
	}
	b.Set(c, side)
	for _, captured := range captures {
		b.Set(captured, side)
	}
	return captures, nil
}

// LegalMoves lists every cell side can play, scanning rows top to bottom and each
// row left to right.
func LegalMoves(b *Board, side Side) []Coord {
	var moves []Coord
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			c := Coord{x, y}
			if _, err := EvaluateMove(b, side, c); err == nil {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

func HasLegalMove(b *Board, side Side) bool {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if _, err := EvaluateMove(b, side, Coord{x, y}); err == nil {
				return true
			}
		}
	}
	return false
}
