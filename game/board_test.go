package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("new board is empty", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, 64, b.Count(Empty), "Every cell should be empty")
		require.Equal(t, Score{}, b.Score(), "Empty board should have no pieces")
	})

	t.Run("reset places the four starting pieces", func(t *testing.T) {
		b := NewBoard()
		b.Set(Coord{0, 0}, Light)

		b.Reset()

		require.Equal(t, Score{Dark: 2, Light: 2}, b.Score())
		require.Equal(t, Dark, b.At(Coord{3, 4}))
		require.Equal(t, Dark, b.At(Coord{4, 3}))
		require.Equal(t, Light, b.At(Coord{3, 3}))
		require.Equal(t, Light, b.At(Coord{4, 4}))
		require.Equal(t, Empty, b.At(Coord{0, 0}), "Reset should clear previous pieces")
	})

	t.Run("copy is independent of the original", func(t *testing.T) {
		b := NewBoard()
		b.Reset()

		dup := b.Copy()
		dup.Set(Coord{0, 0}, Dark)

		require.Equal(t, Empty, b.At(Coord{0, 0}), "Mutating the copy should not touch the original")
		require.Equal(t, 3, dup.Score().Dark)
		require.Equal(t, 2, b.Score().Dark)
	})

	t.Run("cell counts always sum to 64", func(t *testing.T) {
		b := NewBoard()
		b.Reset()
		side := Dark
		for i := 0; i < 10; i++ {
			moves := LegalMoves(b, side)
			if len(moves) == 0 {
				break
			}
			_, err := ApplyMove(b, side, moves[len(moves)-1])
			require.NoError(t, err)
			require.Equal(t, 64, b.Count(Dark)+b.Count(Light)+b.Count(Empty))
			side = side.Opponent()
		}
	})

	t.Run("hash changes with the position", func(t *testing.T) {
		b := NewBoard()
		b.Reset()
		before := b.Hash()

		_, err := ApplyMove(b, Dark, Coord{3, 2})
		require.NoError(t, err)

		require.NotEqual(t, before, b.Hash())
		require.Equal(t, b.Hash(), b.Copy().Hash(), "Identical boards should hash alike")
	})
}

func TestScore(t *testing.T) {
	t.Run("leader is the side with more pieces", func(t *testing.T) {
		require.Equal(t, Dark, Score{Dark: 33, Light: 31}.Leader())
		require.Equal(t, Light, Score{Dark: 10, Light: 12}.Leader())
		require.Equal(t, Empty, Score{Dark: 32, Light: 32}.Leader(), "A tie has no leader")
	})

	t.Run("of returns the count of a side", func(t *testing.T) {
		s := Score{Dark: 5, Light: 7}

		require.Equal(t, 5, s.Of(Dark))
		require.Equal(t, 7, s.Of(Light))
		require.Equal(t, 0, s.Of(Empty))
	})
}

func TestCoord(t *testing.T) {
	require.True(t, Coord{0, 0}.IsCorner())
	require.True(t, Coord{7, 0}.IsCorner())
	require.True(t, Coord{0, 7}.IsCorner())
	require.True(t, Coord{7, 7}.IsCorner())
	require.False(t, Coord{0, 3}.IsCorner())
	require.False(t, Coord{8, 8}.IsOnBoard())
	require.False(t, Coord{-1, 2}.IsOnBoard())
	require.Equal(t, Light, Dark.Opponent())
	require.Equal(t, Dark, Light.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}
