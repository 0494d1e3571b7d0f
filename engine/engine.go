package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// MaxTurns bounds a game loop. Every turn places a piece, so a game never needs
// more than the 60 free cells.
const MaxTurns = game.BoardSize*game.BoardSize - 4

type Result struct {
	Winner game.Side // Empty on a tie
	Score  game.Score
	Names  [2]string // Dark, Light
}

// WinnerName returns the name of the winning agent, "" on a tie.
func (r Result) WinnerName() string {
	switch r.Winner {
	case game.Dark:
		return r.Names[0]
	case game.Light:
		return r.Names[1]
	default:
		return ""
	}
}

type Engine interface {
	// Run plays a game till neither side can move
	Run() (result Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
