package player

import (
	"errors"
	"fmt"
	"reversi/game"
	"strings"
)

type Command int

const (
	CommandMove Command = iota
	CommandQuit
	CommandHints
)

var ErrBadInput = errors.New("enter the x value (1-8) followed by the y value (1-8), e.g. 81 is the top right corner")

// ParseInput reads a console command. Moves are two digits, x then y, counted
// from 1.
func ParseInput(input string) (Command, game.Coord, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "quit":
		return CommandQuit, game.Coord{}, nil
	case "hints":
		return CommandHints, game.Coord{}, nil
	}

	if len(input) != 2 || !isDigit1to8(input[0]) || !isDigit1to8(input[1]) {
		return CommandMove, game.Coord{}, fmt.Errorf("%q: %w", input, ErrBadInput)
	}
	return CommandMove, game.Coord{X: int(input[0] - '1'), Y: int(input[1] - '1')}, nil
}

func isDigit1to8(b byte) bool {
	return b >= '1' && b <= '8'
}
