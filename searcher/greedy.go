package searcher

import (
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Greedy looks one ply ahead and plays the move leaving it the most pieces, unless a
// corner is available.
type Greedy struct {
	options
}

func NewGreedy(opts ...Option) *Greedy {
	return &Greedy{options: newOptions(opts)}
}

func (g *Greedy) Select(b *game.Board, side game.Side) (game.Coord, metrics.SearchMetric, error) {
	g.metrics.Start(metrics.StrategyGreedy, 1, 1)

	moves := game.LegalMoves(b, side)
	if len(moves) == 0 {
		return game.Coord{}, metrics.SearchMetric{}, fmt.Errorf("greedy move for %v: %w", side, game.ErrNoLegalMoves)
	}

	// Corners can never be flipped back
	var corners []game.Coord
	for _, move := range moves {
		if move.IsCorner() {
			corners = append(corners, move)
		}
	}
	if len(corners) > 0 {
		move := pickRandom(g.rng, corners)
		log.Debug().Msgf("greedy %v takes corner %v", side, move)
		return move, g.metrics.Complete(len(moves), g.scoreAfter(b, side, move)), nil
	}

	bestScore := -1
	var best []game.Coord
	for _, move := range moves {
		score := g.scoreAfter(b, side, move)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, move)
		}
	}

	move := pickRandom(g.rng, best)
	log.Debug().Msgf("greedy %v plays %v reaching %d pieces", side, move, bestScore)
	return move, g.metrics.Complete(len(moves), bestScore), nil
}

// scoreAfter simulates move on a copy and returns the mover's piece count.
func (g *Greedy) scoreAfter(b *game.Board, side game.Side, move game.Coord) int {
	g.metrics.AddNode()
	dup := b.Copy()
	if _, err := game.ApplyMove(dup, side, move); err != nil {
		panic(fmt.Sprintf("legal move %v rejected: %v", move, err))
	}
	return dup.Score().Of(side)
}
