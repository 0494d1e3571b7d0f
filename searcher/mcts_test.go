package searcher

import (
	"reversi/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMCTSSelect(t *testing.T) {
	t.Run("playing a legal opening move", func(t *testing.T) {
		b := startingBoard()

		got, metric, err := NewMCTS(WithEpisodes(200), WithSeed(1), WithMetrics()).Select(b, game.Dark)

		require.NoError(t, err)
		require.Contains(t, game.LegalMoves(b, game.Dark), got)
		require.Equal(t, 4, metric.Candidates)
		require.Equal(t, 200, metric.Leaves, "One rollout per episode")
		require.Equal(t, 200, metric.Nodes)
		require.Equal(t, MaxCutoff, metric.Depth)
	})

	t.Run("visiting the root once per episode", func(t *testing.T) {
		for _, goroutines := range []int{1, 4} {
			m := NewMCTS(WithEpisodes(300), WithGoroutines(goroutines), WithSeed(2))

			_, _, err := m.Select(startingBoard(), game.Light)

			require.NoError(t, err)
			require.Equal(t, 300.0, m.root.visits)
			total := 0.0
			for _, child := range m.root.children {
				total += child.visits
				require.LessOrEqual(t, child.rewards, child.visits, "No virtual loss should remain")
				require.GreaterOrEqual(t, child.rewards, -child.visits, "No virtual loss should remain")
			}
			require.Equal(t, 300.0, total, "Every episode passes through one root child")
		}
	})

	t.Run("repeating a seeded search", func(t *testing.T) {
		b := cornerOrTriple()

		first, _, err := NewMCTS(WithEpisodes(100), WithSeed(5)).Select(b, game.Dark)
		require.NoError(t, err)
		second, _, err := NewMCTS(WithEpisodes(100), WithSeed(5)).Select(b, game.Dark)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("searching for a duration", func(t *testing.T) {
		m := NewMCTS(WithDuration(20*time.Millisecond), WithGoroutines(2), WithCutoff(4), WithMetrics())

		got, metric, err := m.Select(startingBoard(), game.Dark)

		require.NoError(t, err)
		require.Contains(t, game.LegalMoves(startingBoard(), game.Dark), got)
		require.Equal(t, 4, metric.Depth)
		require.Equal(t, float64(metric.Leaves), m.root.visits)
	})

	t.Run("failing when the side must pass", func(t *testing.T) {
		_, _, err := NewMCTS(WithEpisodes(10)).Select(game.NewBoard(), game.Dark)

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("leaving the board untouched", func(t *testing.T) {
		b := cornerOrTriple()
		before := *b

		_, _, err := NewMCTS(WithEpisodes(50), WithGoroutines(3)).Select(b, game.Dark)

		require.NoError(t, err)
		require.Equal(t, before, *b)
	})

	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS() })
	})
}

func TestRollout(t *testing.T) {
	t.Run("playing to the end", func(t *testing.T) {
		state := &game.GameState{Turn: game.Dark}
		state.Board.Set(game.Coord{X: 1, Y: 0}, game.Light)
		state.Board.Set(game.Coord{X: 2, Y: 0}, game.Dark)

		winner := rollout(state, MaxCutoff, NewMCTS(WithEpisodes(1)).rng)

		require.Equal(t, game.Dark, winner)
		require.True(t, state.IsOver())
	})

	t.Run("judging by position weights at the cutoff", func(t *testing.T) {
		state := game.NewGameState(game.Dark)
		state.Board.Set(game.Coord{X: 7, Y: 7}, game.Light)

		winner := rollout(state, 0, nil)

		require.Equal(t, game.Light, winner, "Light holds a corner")
		require.Equal(t, 0, state.Plies)
	})
}
