package game

// PositionValues weighs each cell by its strategic worth: corners are prized, the
// cells handing a corner to the opponent are penalised. Symmetric under reflection.
var PositionValues = [BoardSize][BoardSize]int{
	{120, -20, 20, 5, 5, 20, -20, 120},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{5, -5, 3, 3, 3, 3, -5, 5},
	{20, -5, 15, 3, 3, 15, -5, 20},
	{-20, -40, -5, -5, -5, -5, -40, -20},
	{120, -20, 20, 5, 5, 20, -20, 120},
}

func PositionValue(c Coord) int {
	return PositionValues[c.X][c.Y]
}

// StaticValue is the positional value of an optional coordinate. An absent
// coordinate has no value and reports ErrUndefinedEvaluation.
func StaticValue(c OptionalCoord) (int, error) {
	if !c.Valid {
		return 0, ErrUndefinedEvaluation
	}
	if !c.IsOnBoard() {
		return 0, newIllegalMoveError(c.Coord, Empty, OutOfRange)
	}
	return PositionValue(c.Coord), nil
}

// EvaluatePosition sums the positional values of side's pieces minus the
// opponent's. Used to describe positions in move records.
func EvaluatePosition(b *Board, side Side) int {
	total := 0
	opponent := side.Opponent()
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch b[x][y] {
			case side:
				total += PositionValues[x][y]
			case opponent:
				total -= PositionValues[x][y]
			}
		}
	}
	return total
}
