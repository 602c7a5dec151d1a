// Package tictactoe implements the tic-tac-toe board, the random opponent and
// the per-party session controller that drives a game through chat buttons.
package tictactoe

import (
	"errors"
	"fmt"
)

// Size is the number of rows and columns of the board.
const Size = 3

// Errors for board operations.
var (
	ErrInvalidCell  = errors.New("cell coordinates out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
)

// Cell is the state of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	Human
	Opponent
)

// String returns a debug name of the cell state.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Human:
		return "human"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Coord addresses a cell, row-major and zero-indexed.
type Coord struct {
	Row int
	Col int
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Board is a 3x3 grid. The zero value is an empty board.
type Board [Size][Size]Cell

// lines lists every row, column and both diagonals.
var lines = [8][3]Coord{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

// At returns the cell at c. Out of range coordinates read as Empty.
func (b Board) At(c Coord) Cell {
	if !c.Valid() {
		return Empty
	}
	return b[c.Row][c.Col]
}

// Place sets the cell at c to mark. The cell must be empty.
func (b *Board) Place(c Coord, mark Cell) error {
	if !c.Valid() {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, c.Row, c.Col)
	}
	if b[c.Row][c.Col] != Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, c.Row, c.Col)
	}
	b[c.Row][c.Col] = mark
	return nil
}

// FreeCells returns the empty cells in row-major order.
func (b Board) FreeCells() []Coord {
	free := make([]Coord, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				free = append(free, Coord{Row: r, Col: c})
			}
		}
	}
	return free
}

// Won reports whether any line holds three identical non-empty marks.
// It does not say which mark won; callers check right after each placement.
func (b Board) Won() bool {
	for _, line := range lines {
		first := b.At(line[0])
		if first != Empty && first == b.At(line[1]) && first == b.At(line[2]) {
			return true
		}
	}
	return false
}

// IsFull reports whether no empty cell is left.
func (b Board) IsFull() bool {
	return len(b.FreeCells()) == 0
}

// Count returns how many cells hold mark.
func (b Board) Count(mark Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == mark {
				n++
			}
		}
	}
	return n
}
