package gamemaster

import (
	"fmt"
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// UpdateGetter returns the next played move and a copy of the resulting state, or
// an invalid move and nil when nothing new happened.
type UpdateGetter func() (game.OptionalCoord, *game.GameState)

type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Coord) error
	State() *game.GameState
}

type update struct {
	move  game.Coord
	state *game.GameState
}

type localEngine struct {
	first    game.Side
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine(first game.Side) *localEngine {
	return &localEngine{first: first}
}

func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	e.state = game.NewGameState(e.first)
	e.gameOver = false
	// Every move fills a cell, so the buffer never blocks Play
	e.updateCh = make(chan update, game.BoardSize*game.BoardSize)

	return e.state.Copy(), func() (game.OptionalCoord, *game.GameState) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return game.None, nil
			}
			return game.Some(u.move), u.state
		default:
			// No updates yet, return immediately
			return game.None, nil
		}
	}
}

// State returns a copy of the current state.
func (e *localEngine) State() *game.GameState {
	return e.state.Copy()
}

func (e *localEngine) Play(move game.Coord) error {
	if e.state == nil {
		return fmt.Errorf("play %v: engine not initialised", move)
	}
	if e.gameOver {
		return game.ErrGameOver
	}

	side := e.state.Player()
	if _, err := e.state.Play(move); err != nil {
		log.Warn().Msgf("rejected move %v for %v: %v", move, side, err)
		return fmt.Errorf("play %v: %w", move, err)
	}

	e.updateCh <- update{move: move, state: e.state.Copy()}
	if e.state.IsOver() {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}
