package player

import (
	"fmt"
	"io"
	"reversi/game"
	"reversi/utils"
	"strings"
)

const (
	header = "    1   2   3   4   5   6   7   8"
	hline  = "  +---+---+---+---+---+---+---+---+"
	vline  = "  |   |   |   |   |   |   |   |   |"
)

// DrawBoard writes the board as a grid with columns numbered by x and rows by y.
// Empty cells listed in hints are marked with a dot.
func DrawBoard(w io.Writer, b *game.Board, hints []game.Coord) {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	sb.WriteString(hline + "\n")
	for y := 0; y < game.BoardSize; y++ {
		sb.WriteString(vline + "\n")
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < game.BoardSize; x++ {
			c := game.Coord{X: x, Y: y}
			cell := b.At(c).Rune()
			if b.At(c) == game.Empty && utils.FindIndex(hints, c) >= 0 {
				cell = '.'
			}
			fmt.Fprintf(&sb, "| %c ", cell)
		}
		sb.WriteString("|\n")
		sb.WriteString(vline + "\n")
		sb.WriteString(hline + "\n")
	}
	io.WriteString(w, sb.String())
}

// ShowPoints writes the piece count of each side next to the name playing it.
func ShowPoints(w io.Writer, score game.Score, names [2]string) {
	fmt.Fprintf(w, "%s (%c): %d point(s)\n", names[0], game.Dark.Rune(), score.Dark)
	fmt.Fprintf(w, "%s (%c): %d point(s)\n", names[1], game.Light.Rune(), score.Light)
}
