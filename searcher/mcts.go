package searcher

import (
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxCutoff lets rollouts run to the end of the game.
const MaxCutoff = game.BoardSize * game.BoardSize

// MCTS searches with parallel Monte Carlo tree search sharing one tree between
// goroutines, using virtual loss to spread them over different branches.
type MCTS struct {
	options
	root *node
}

func NewMCTS(opts ...Option) *MCTS {
	m := &MCTS{options: newOptions(opts)}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Select(b *game.Board, side game.Side) (game.Coord, metrics.SearchMetric, error) {
	m.metrics.Start(metrics.StrategyMCTS, m.cutoff, m.goroutines)

	state := &game.GameState{Board: *b, Turn: side}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, metrics.SearchMetric{}, fmt.Errorf("mcts move for %v: %w", side, game.ErrNoLegalMoves)
	}

	// Run simulations to collect statistics
	m.root = newNode(nil, game.Empty, state)
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}

	best, visits := m.root.bestMoves()
	if len(best) == 0 { // Out of time before the first simulation
		best, visits = moves, 0
	}
	move := pickRandom(m.rng, best)
	log.Debug().Msgf("mcts %v plays %v visited %.0f times of %.0f", side, move, visits, m.root.visitCount())
	return move, m.metrics.Complete(len(moves), int(visits)), nil
}

// workerRands hands each goroutine its own source, seeded in order from the
// shared one.
func (m *MCTS) workerRands() []*rand.Rand {
	rngs := make([]*rand.Rand, m.goroutines)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(m.rng.Uint64()))
	}
	return rngs
}

func (m *MCTS) iterate(state *game.GameState) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for _, rng := range m.workerRands() {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
			}
		}(rng)
	}

	wg.Wait()
}

func (m *MCTS) countdown(state *game.GameState) {
	done := make(chan any)

	var wg sync.WaitGroup
	for _, rng := range m.workerRands() {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(state, rng)
				}
			}
		}(rng)
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(state *game.GameState, rng *rand.Rand) {
	s := state.Copy()
	leaf := selectThenExpand(m.root, s)
	m.metrics.AddNode()
	winner := rollout(s, m.cutoff, rng)
	m.metrics.AddLeaf()
	backup(leaf, winner)
}

func selectThenExpand(root *node, state *game.GameState) *node {
	child, descend := root.selectOrExpand(state)
	for descend {
		child, descend = child.selectOrExpand(state)
	}
	return child
}

// rollout plays random moves till the game is over or for cutoff moves, and
// returns the winner, or the side ahead on position weights at the cutoff.
func rollout(state *game.GameState, cutoff int, rng *rand.Rand) game.Side {
	for depth := 0; !state.IsOver() && depth < cutoff; depth++ {
		moves := state.LegalMoves()
		mustPlay(state, moves[rng.Intn(len(moves))]) // Random rollout policy
	}

	if state.IsOver() {
		return state.Winner()
	}

	switch v := game.EvaluatePosition(&state.Board, game.Dark); {
	case v > 0:
		return game.Dark
	case v < 0:
		return game.Light
	default:
		return game.Empty
	}
}

func backup(leaf *node, winner game.Side) {
	for n := leaf; n != nil; {
		n = n.backup(winner)
	}
}
