package searcher

import (
	"math"
	"reversi/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests parallel MCTS (tree parallelization with virtual loss) on Reversi positions
- selection: fully expanded node -> max UCT child + loss, move played on the state
- expansion: expandable node -> new child for the next move + loss
- terminal node -> same node, state untouched
- backup: reverse loss, visits++, reward from the mover's point of view
*/

func TestNodeSelectOrExpand(t *testing.T) {
	t.Run("expanding the next unexplored move", func(t *testing.T) {
		state := game.NewGameState(game.Dark)
		root := newNode(nil, game.Empty, state)

		child, descend := root.selectOrExpand(state)

		require.False(t, descend, "A new node ends the descent")
		require.Len(t, root.children, 1)
		require.Same(t, root, child.parent)
		require.Equal(t, game.Dark, child.mover)
		require.Equal(t, Loss, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 1.0, child.visits, "Child should apply a temporary loss")
		require.Equal(t, game.Some(root.moves[0]), state.LastMove, "State should follow the expanded move")
		require.Equal(t, game.Light, state.Player())
		require.Len(t, child.moves, 3, "Light has three replies after any opening move")
		require.Equal(t, 0.0, root.visits, "Node stats should not change")
	})

	t.Run("selecting the child with max UCT once fully expanded", func(t *testing.T) {
		state := game.NewGameState(game.Dark)
		root := newNode(nil, game.Empty, state)
		for i := range root.moves {
			root.children = append(root.children, &node{parent: root, mover: game.Dark, rewards: 0, visits: 2})
			if i == 2 {
				root.children[i].rewards = 2
			}
		}

		child, descend := root.selectOrExpand(state)

		require.True(t, descend, "Node should perform selection")
		require.Same(t, root.children[2], child)
		require.Equal(t, 2+Loss, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 3.0, child.visits)
		require.Equal(t, game.Some(root.moves[2]), state.LastMove)
	})

	t.Run("stopping at a terminal node", func(t *testing.T) {
		state := &game.GameState{}
		terminal := newNode(nil, game.Dark, state)

		child, descend := terminal.selectOrExpand(state)

		require.Same(t, terminal, child)
		require.False(t, descend)
		require.Equal(t, game.GameState{}, *state, "State should not change")
	})
}

func TestNodeBackup(t *testing.T) {
	t.Run("reversing the virtual loss and rewarding the mover", func(t *testing.T) {
		root := &node{}
		child := &node{parent: root, mover: game.Dark}
		grandChild := &node{parent: child, mover: game.Light}
		child.applyLoss()
		grandChild.applyLoss()

		backup(grandChild, game.Dark)

		require.Equal(t, Loss, grandChild.rewards, "Light lost")
		require.Equal(t, 1.0, grandChild.visits)
		require.Equal(t, Win, child.rewards, "Dark won")
		require.Equal(t, 1.0, child.visits)
		require.Equal(t, 1.0, root.visits)
	})

	t.Run("ties reward nobody", func(t *testing.T) {
		root := &node{}
		child := &node{parent: root, mover: game.Light}
		child.applyLoss()

		backup(child, game.Empty)

		require.Equal(t, Tie, child.rewards)
		require.Equal(t, 1.0, child.visits)
	})

	t.Run("concurrent backups", func(t *testing.T) {
		root := &node{}
		child := &node{parent: root, mover: game.Dark}
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			child.applyLoss()
			wg.Add(1)
			go func() {
				defer wg.Done()
				backup(child, game.Dark)
			}()
		}
		wg.Wait()

		require.Equal(t, 100.0, child.visits)
		require.Equal(t, 100*Win, child.rewards)
		require.Equal(t, 100.0, root.visits)
	})
}

func TestNodeBestMoves(t *testing.T) {
	root := &node{
		moves: []game.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		children: []*node{
			{visits: 5}, {visits: 9}, {visits: 9},
		},
	}

	best, visits := root.bestMoves()

	require.Equal(t, []game.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}}, best)
	require.Equal(t, 9.0, visits)
}

func TestUCT(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		normalizer := CSquared * math.Log(100)

		got := uct(5.0, 10, normalizer)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001, "Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		require.Panics(t, func() {
			uct(5.0, 0, 1)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		normalizer := CSquared * math.Log(100)

		require.Greater(t, uct(5.0, 10, normalizer), uct(5.0, 20, normalizer))
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		normalizer := CSquared * math.Log(100)

		require.Greater(t, uct(10.0, 10, normalizer), uct(5.0, 10, normalizer))
	})
}
