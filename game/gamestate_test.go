package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameState(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		gs := NewGameState(Light)

		require.Equal(t, Light, gs.Player())
		require.Equal(t, Score{Dark: 2, Light: 2}, gs.Score())
		require.False(t, gs.IsOver())
		require.Equal(t, Empty, gs.Winner(), "A running game has no winner")
		require.False(t, gs.LastMove.Valid)
	})

	t.Run("panics on an empty first side", func(t *testing.T) {
		require.Panics(t, func() { NewGameState(Empty) })
	})

	t.Run("alternating turns", func(t *testing.T) {
		gs := NewGameState(Dark)

		captures, err := gs.Play(Coord{3, 2})

		require.NoError(t, err)
		require.Len(t, captures, 1)
		require.Equal(t, Light, gs.Player())
		require.Equal(t, 1, gs.Plies)
		require.Equal(t, Some(Coord{3, 2}), gs.LastMove)
	})

	t.Run("rejecting an illegal move keeps the turn", func(t *testing.T) {
		gs := NewGameState(Dark)

		_, err := gs.Play(Coord{0, 0})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, Dark, gs.Player())
		require.Equal(t, 0, gs.Plies)
	})

	t.Run("passing when the opponent cannot move", func(t *testing.T) {
		gs := &GameState{Turn: Dark}
		gs.Board.Set(Coord{1, 0}, Light)
		gs.Board.Set(Coord{2, 0}, Dark)
		gs.Board.Set(Coord{5, 7}, Light)
		gs.Board.Set(Coord{6, 7}, Light)
		gs.Board.Set(Coord{7, 7}, Dark)

		_, err := gs.Play(Coord{0, 0})

		require.NoError(t, err)
		require.Equal(t, Dark, gs.Player(), "Light has no move so Dark plays again")
		require.Equal(t, 1, gs.Passes)

		_, err = gs.Play(Coord{4, 7})

		require.NoError(t, err)
		require.True(t, gs.IsOver(), "Neither side can move")
		require.Equal(t, Dark, gs.Winner())
		require.Equal(t, Score{Dark: 7}, gs.Score())
	})

	t.Run("refusing moves after the game is over", func(t *testing.T) {
		gs := &GameState{Turn: Dark}
		gs.Board.Set(Coord{1, 0}, Light)
		gs.Board.Set(Coord{2, 0}, Dark)
		_, err := gs.Play(Coord{0, 0})
		require.NoError(t, err)
		require.True(t, gs.IsOver())

		_, err = gs.Play(Coord{3, 0})

		require.ErrorIs(t, err, ErrGameOver)
		require.Nil(t, gs.LegalMoves())
	})

	t.Run("copy does not share the board", func(t *testing.T) {
		gs := NewGameState(Dark)
		dup := gs.Copy()

		_, err := dup.Play(Coord{3, 2})
		require.NoError(t, err)

		require.Equal(t, Score{Dark: 2, Light: 2}, gs.Score())
		require.NotEqual(t, gs.Hash(), dup.Hash())
	})
}

func TestStaticValue(t *testing.T) {
	t.Run("valuing a coordinate", func(t *testing.T) {
		v, err := StaticValue(Some(Coord{0, 0}))

		require.NoError(t, err)
		require.Equal(t, 120, v)
	})

	t.Run("absent coordinate is undefined", func(t *testing.T) {
		v, err := StaticValue(None)

		require.ErrorIs(t, err, ErrUndefinedEvaluation)
		require.Equal(t, 0, v)
	})

	t.Run("table is symmetric under reflection", func(t *testing.T) {
		last := BoardSize - 1
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				v := PositionValues[x][y]
				require.Equal(t, v, PositionValues[last-x][y])
				require.Equal(t, v, PositionValues[x][last-y])
				require.Equal(t, v, PositionValues[y][x])
			}
		}
	})

	t.Run("evaluating a position", func(t *testing.T) {
		b := startingBoard()

		require.Equal(t, 0, EvaluatePosition(b, Dark), "Centre cells share the same weight")

		b.Set(Coord{0, 0}, Dark)
		require.Equal(t, 120, EvaluatePosition(b, Dark))
		require.Equal(t, -120, EvaluatePosition(b, Light))
	})
}
