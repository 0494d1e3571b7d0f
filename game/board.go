package game

import "hash/fnv"

// Board is the 8x8 grid, indexed [x][y]. It is a value type: assigning a Board
// duplicates every cell.
type Board [BoardSize][BoardSize]Side

// NewBoard returns a board with every cell empty.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties the board and places the four starting pieces.
func (b *Board) Reset() {
	*b = Board{}
	mid := BoardSize / 2
	b[mid-1][mid], b[mid][mid-1] = Dark, Dark
	b[mid-1][mid-1], b[mid][mid] = Light, Light
}

// Copy creates a deep copy of the board (used to simulate moves)
func (b *Board) Copy() *Board {
	dup := *b
	return &dup
}

func (b *Board) At(c Coord) Side {
	return b[c.X][c.Y]
}

func (b *Board) Set(c Coord, side Side) {
	b[c.X][c.Y] = side
}

// Score counts the pieces of each side.
func (b *Board) Score() Score {
	var s Score
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch b[x][y] {
			case Dark:
				s.Dark++
			case Light:
				s.Light++
			}
		}
	}
	return s
}

// Count returns the number of cells holding side, Empty included.
func (b *Board) Count(side Side) int {
	n := 0
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b[x][y] == side {
				n++
			}
		}
	}
	return n
}

func (b *Board) Hash() StateHash {
	h := fnv.New64a()
	var cells [BoardSize * BoardSize]byte
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			cells[x*BoardSize+y] = byte(b[x][y])
		}
	}
	h.Write(cells[:])
	return StateHash(h.Sum64())
}
