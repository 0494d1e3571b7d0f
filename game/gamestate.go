package game

import "fmt"

// GameState is the board plus whose turn it is.
type GameState struct {
	Board    Board         // Cells, copied by value
	Turn     Side          // Side to move, Empty once the game is over
	Plies    int           // Pieces placed since the start
	Passes   int           // Turns skipped because the side had no legal move
	LastMove OptionalCoord // Last placed piece
}

// NewGameState returns the starting position with first to move.
func NewGameState(first Side) *GameState {
	if !first.isPlayer() {
		panic(fmt.Sprintf("invalid first side: %v", first))
	}
	gs := &GameState{Turn: first}
	gs.Board.Reset()
	return gs
}

func (gs GameState) Copy() *GameState {
	return &gs
}

func (gs *GameState) Player() Side {
	return gs.Turn
}

func (gs *GameState) LegalMoves() []Coord {
	if gs.Turn == Empty {
		return nil
	}
	return LegalMoves(&gs.Board, gs.Turn)
}

// Play places a piece for the side to move, then hands the turn over. A side with
// no legal move is skipped; when neither side can move the game ends.
func (gs *GameState) Play(c Coord) (Captures, error) {
	if gs.Turn == Empty {
		return nil, ErrGameOver
	}
	captures, err := ApplyMove(&gs.Board, gs.Turn, c)
	if err != nil {
		return nil, err
	}
	gs.Plies++
	gs.LastMove = Some(c)

	mover := gs.Turn
	switch {
	case HasLegalMove(&gs.Board, mover.Opponent()):
		gs.Turn = mover.Opponent()
	case HasLegalMove(&gs.Board, mover):
		gs.Passes++
	default:
		gs.Turn = Empty
	}
	return captures, nil
}

// IsOver reports whether neither side can move.
func (gs *GameState) IsOver() bool {
	return gs.Turn == Empty
}

func (gs *GameState) Score() Score {
	return gs.Board.Score()
}

// Winner returns the side with more pieces once the game is over, Empty on a tie
// or while the game is running.
func (gs *GameState) Winner() Side {
	if !gs.IsOver() {
		return Empty
	}
	return gs.Score().Leader()
}

func (gs *GameState) Hash() StateHash {
	return gs.Board.Hash() ^ StateHash(gs.Turn)
}
