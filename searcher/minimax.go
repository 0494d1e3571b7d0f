package searcher

import (
	"errors"
	"fmt"
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
	"sync"

	"github.com/rs/zerolog/log"
)

// Minimax is the "Flash" strategy: a fixed-depth minimax whose leaves are valued by
// the static weight of the cell last played rather than by material.
//
// By default the minimising level enumerates the mover's own moves on the board it
// received, without playing them. WithAdversarialReplies switches to the
// opponent's replies, each played on a copy.
type Minimax struct {
	options
}

// ply is the move that led to a search node.
type ply struct {
	at game.OptionalCoord
	by game.Side
}

type scored struct {
	value int
	move  game.Coord
}

func NewMinimax(opts ...Option) *Minimax {
	return &Minimax{options: newOptions(opts)}
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Select(b *game.Board, side game.Side) (game.Coord, metrics.SearchMetric, error) {
	m.metrics.Start(metrics.StrategyFlash, m.depth, m.goroutines)

	moves := game.LegalMoves(b, side)
	if len(moves) == 0 {
		return game.Coord{}, metrics.SearchMetric{}, fmt.Errorf("flash move for %v: %w", side, game.ErrNoLegalMoves)
	}

	values := m.evaluateRoot(b, side, moves)

	bestValue := math.MinInt
	var best []game.Coord
	for i, v := range values {
		if v > bestValue {
			bestValue = v
			best = best[:0]
		}
		if v == bestValue {
			best = append(best, moves[i])
		}
	}

	move := pickRandom(m.rng, best)
	log.Debug().Msgf("flash %v plays %v valued %d (%d tied of %d)", side, move, bestValue, len(best), len(moves))
	return move, m.metrics.Complete(len(moves), bestValue), nil
}

// evaluateRoot values every root move. Branches work on their own board copies, so
// they may run on several goroutines; results keep the order of moves.
func (m *Minimax) evaluateRoot(b *game.Board, side game.Side, moves []game.Coord) []int {
	m.metrics.AddNode()
	values := make([]int, len(moves))

	if m.goroutines <= 1 {
		for i, move := range moves {
			values[i] = m.branch(b, side, move)
		}
		return values
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				values[idx] = m.branch(b, side, moves[idx])
			}
		}()
	}

	wg.Wait()
	return values
}

func (m *Minimax) branch(b *game.Board, side game.Side, move game.Coord) int {
	dup := play(b, side, move)
	return m.minValue(dup, side, ply{at: game.Some(move), by: side}, m.depth-1).value
}

func (m *Minimax) maxValue(b *game.Board, side game.Side, last ply, depth int) scored {
	moves := game.LegalMoves(b, side)
	if depth <= 0 || len(moves) == 0 {
		return scored{value: m.leaf(side, last)}
	}
	m.metrics.AddNode()

	best := scored{value: math.MinInt}
	for _, move := range moves {
		dup := play(b, side, move)
		v := m.minValue(dup, side, ply{at: game.Some(move), by: side}, depth-1)
		if v.value > best.value {
			best = scored{value: v.value, move: move}
		}
	}
	return best
}

func (m *Minimax) minValue(b *game.Board, side game.Side, last ply, depth int) scored {
	replier := side
	if m.adversarial {
		replier = side.Opponent()
	}

	moves := game.LegalMoves(b, replier)
	if depth <= 0 || len(moves) == 0 {
		return scored{value: m.leaf(side, last)}
	}
	m.metrics.AddNode()

	best := scored{value: math.MaxInt}
	for _, move := range moves {
		next := b
		if m.adversarial {
			next = play(b, replier, move)
		}
		v := m.maxValue(next, side, ply{at: game.Some(move), by: replier}, depth-1)
		if v.value < best.value {
			best = scored{value: v.value, move: move}
		}
	}
	return best
}

// leaf values the cell that led here from side's point of view. A node reached
// without any move has no cell and scores neutral.
func (m *Minimax) leaf(side game.Side, last ply) int {
	m.metrics.AddLeaf()
	v, err := game.StaticValue(last.at)
	if errors.Is(err, game.ErrUndefinedEvaluation) {
		return 0
	}
	if last.by != side {
		return -v
	}
	return v
}

func play(b *game.Board, side game.Side, move game.Coord) *game.Board {
	dup := b.Copy()
	if _, err := game.ApplyMove(dup, side, move); err != nil {
		panic(fmt.Sprintf("legal move %v rejected: %v", move, err))
	}
	return dup
}
