package engine

import (
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Update is sent to observers after every move.
type Update struct {
	Step     int
	Side     game.Side
	Move     game.Coord
	Captures game.Captures
	State    *game.GameState // Copy, safe to keep
	Hash     game.StateHash
}

type Option func(e *LocalEngine)

// WithObserver registers a callback receiving every applied move.
func WithObserver(observe func(Update)) Option {
	return func(e *LocalEngine) {
		if observe != nil {
			e.observers = append(e.observers, observe)
		}
	}
}

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State     *game.GameState
	Agents    [2]agent.Agent // Dark, Light
	observers []func(Update)
}

// NewLocalEngine sets up a game between agents[0] playing Dark and agents[1]
// playing Light, with first to move.
func NewLocalEngine(agents [2]agent.Agent, first game.Side, options ...Option) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}

	e := &LocalEngine{
		State:  game.NewGameState(first),
		Agents: agents,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) agentFor(side game.Side) agent.Agent {
	if side == game.Dark {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the game loop until neither side can move.
func (e *LocalEngine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingSide: e.State.Player(),
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%v (%s) is starting", e.State.Player(), e.agentFor(e.State.Player()).Name())

	step := 1
	for !e.State.IsOver() && step <= MaxTurns {
		side := e.State.Player()
		current := e.agentFor(side)

		move, searchMetric, err := current.FindMove(e.State)
		if err != nil {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move for %v: %w", current.Name(), side, err)
		}

		captures, err := e.State.Play(move)
		if err != nil {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("%s played %v: %w", current.Name(), move, err)
		}

		u := Update{
			Step:     step,
			Side:     side,
			Move:     move,
			Captures: captures,
			State:    e.State.Copy(),
			Hash:     e.State.Hash(),
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side,
			Move:         move,
			Captures:     len(captures),
			Hash:         u.Hash,
			SearchMetric: searchMetric,
		})
		for _, observe := range e.observers {
			observe(u)
		}

		log.Debug().Msgf("turn %d: %v plays %v flipping %d", step, side, move, len(captures))
		if !e.State.IsOver() && e.State.Player() == side {
			log.Debug().Msgf("%v has no legal move and passes", side.Opponent())
		}
		step++
	}

	if !e.State.IsOver() {
		return Result{}, gameMetric, moveMetrics, fmt.Errorf("game stopped after %d turns without ending", MaxTurns)
	}

	result := Result{
		Winner: e.State.Winner(),
		Score:  e.State.Score(),
		Names:  [2]string{e.Agents[0].Name(), e.Agents[1].Name()},
	}
	gameMetric.Winner = result.Winner
	gameMetric.Score = result.Score
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Plies
	gameMetric.Passes = e.State.Passes

	return result, gameMetric, moveMetrics, nil
}
