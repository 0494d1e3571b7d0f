package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Controller interface {
	Run() error
}

type consoleController struct {
	in        *bufio.Scanner
	out       io.Writer
	human     game.Side
	opponent  agent.Agent
	engine    gamemaster.Engine
	showHints bool
}

// NewConsoleController returns a controller letting a person at the console play
// human against the opponent agent.
func NewConsoleController(in io.Reader, out io.Writer, human game.Side, opponent agent.Agent, engine gamemaster.Engine) *consoleController {
	if human != game.Dark && human != game.Light {
		panic("human must play dark or light")
	}
	return &consoleController{
		in:       bufio.NewScanner(in),
		out:      out,
		human:    human,
		opponent: opponent,
		engine:   engine,
	}
}

func (c *consoleController) names() [2]string {
	if c.human == game.Dark {
		return [2]string{"You", c.opponent.Name()}
	}
	return [2]string{c.opponent.Name(), "You"}
}

// Run plays a game until it ends or the human quits.
func (c *consoleController) Run() error {
	state, getUpdate := c.engine.Init()
	fmt.Fprintf(c.out, "%v starts the game.\n", state.Player())

	for !state.IsOver() {
		if state.Player() == c.human {
			var hints []game.Coord
			if c.showHints {
				hints = state.LegalMoves()
			}
			DrawBoard(c.out, &state.Board, hints)
			ShowPoints(c.out, state.Score(), c.names())

			quit, err := c.humanTurn()
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprintln(c.out, "Bye.")
				return nil
			}
		} else {
			move, _, err := c.opponent.FindMove(state)
			if err != nil {
				return fmt.Errorf("%s failed to find a move: %w", c.opponent.Name(), err)
			}
			if err := c.engine.Play(move); err != nil {
				return fmt.Errorf("%s played %v: %w", c.opponent.Name(), move, err)
			}
			fmt.Fprintf(c.out, "%s plays %v.\n", c.opponent.Name(), game.Coord{X: move.X + 1, Y: move.Y + 1})
		}

		move, next := getUpdate()
		if next != nil {
			log.Debug().Msgf("applied %v", move.Coord)
			state = next
		}
	}

	DrawBoard(c.out, &state.Board, nil)
	ShowPoints(c.out, state.Score(), c.names())
	c.showResult(state)
	return nil
}

func (c *consoleController) opponentSide() game.Side {
	return c.human.Opponent()
}

// humanTurn reads commands until a legal move is played or the human quits.
func (c *consoleController) humanTurn() (quit bool, err error) {
	for {
		fmt.Fprintln(c.out, "Enter your move, quit to end the game, or hints to toggle hints.")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return false, fmt.Errorf("read input: %w", err)
			}
			return false, fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}

		command, move, err := ParseInput(c.in.Text())
		if err != nil {
			fmt.Fprintf(c.out, "That is not a valid move, %v.\n", ErrBadInput)
			continue
		}

		switch command {
		case CommandQuit:
			return true, nil
		case CommandHints:
			c.showHints = !c.showHints
			return false, nil
		}

		if err := c.engine.Play(move); err != nil {
			if errors.Is(err, game.ErrIllegalMove) {
				fmt.Fprintln(c.out, "That is not a valid move.")
				continue
			}
			return false, err
		}
		return false, nil
	}
}

func (c *consoleController) showResult(state *game.GameState) {
	score := state.Score()
	margin := score.Of(c.human) - score.Of(c.opponentSide())
	switch state.Winner() {
	case c.human:
		fmt.Fprintf(c.out, "You beat %s by %d point(s)!\n", c.opponent.Name(), margin)
	case game.Empty:
		fmt.Fprintln(c.out, "Tie!")
	default:
		fmt.Fprintf(c.out, "%s beat you by %d point(s).\n", c.opponent.Name(), -margin)
	}
}
