package agent

import (
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	Name() string
	// FindMove returns the move to play for the side to move and performance
	// metrics (if collected) from the search
	FindMove(state *game.GameState) (game.Coord, metrics.SearchMetric, error)
}

type searchAgent struct {
	name     string
	selector searcher.Selector
}

// NewFlashAgent returns an agent playing the minimax strategy.
func NewFlashAgent(name string, m *searcher.Minimax) Agent {
	return searchAgent{name: name, selector: m}
}

// NewMCTSAgent returns an agent playing Monte Carlo tree search.
func NewMCTSAgent(name string, m *searcher.MCTS) Agent {
	return searchAgent{name: name, selector: m}
}

// NewGreedyAgent returns an agent playing the one-ply greedy strategy.
func NewGreedyAgent(name string, g *searcher.Greedy) Agent {
	return searchAgent{name: name, selector: g}
}

func (a searchAgent) Name() string {
	return a.name
}

func (a searchAgent) FindMove(state *game.GameState) (game.Coord, metrics.SearchMetric, error) {
	return a.selector.Select(&state.Board, state.Player())
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) Name() string {
	return "Random"
}

func (a randomAgent) FindMove(state *game.GameState) (game.Coord, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, metrics.SearchMetric{}, fmt.Errorf("random move for %v: %w", state.Player(), game.ErrNoLegalMoves)
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Strategy: metrics.StrategyRandom, Candidates: len(moves)}, nil
}

// FromConfig builds the agent described by config, seeding its tie-breaks with seed.
func FromConfig(config metrics.AgentConfig, seed uint64) (Agent, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Strategy {
	case metrics.StrategyFlash:
		options := []searcher.Option{
			searcher.WithDepth(config.Depth),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		}
		if config.Goroutines > 0 {
			options = append(options, searcher.WithGoroutines(config.Goroutines))
		}
		if config.Adversarial {
			options = append(options, searcher.WithAdversarialReplies())
		}
		return NewFlashAgent(config.Name(), searcher.NewMinimax(options...)), nil
	case metrics.StrategyMCTS:
		options := []searcher.Option{
			searcher.WithEpisodes(config.Episodes),
			searcher.WithDuration(config.Duration),
			searcher.WithCutoff(config.Cutoff),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		}
		return NewMCTSAgent(config.Name(), searcher.NewMCTS(options...)), nil
	case metrics.StrategyGreedy:
		return NewGreedyAgent(config.Name(), searcher.NewGreedy(searcher.WithSeed(seed), searcher.WithMetrics())), nil
	default:
		return NewRandomAgent(rand.New(rand.NewSource(seed))), nil
	}
}
