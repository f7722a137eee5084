package entity

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
)

// BoardSize is fixed: the rules below are specific to the 8x8 game.
const BoardSize = 8

// Board is the 8x8 grid of cells, indexed by (row, col) in [0,8).
// It holds state only; move legality lives in the reversi package.
type Board [BoardSize][BoardSize]Cell

// NewBoard returns a board in the starting position: the four center
// squares are occupied, white on (3,3) and (4,4), black on (3,4) and (4,3).
func NewBoard() Board {
	var board Board

	board[3][3] = PlayerWhite
	board[4][4] = PlayerWhite
	board[3][4] = PlayerBlack
	board[4][3] = PlayerBlack

	return board
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	return that[row][col], nil
}

// Set writes a cell directly, without any legality checking.
func (that *Board) Set(row, col int, cell Cell) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	that[row][col] = cell

	return nil
}

// CountColors scans all 64 cells and returns the black and white totals.
func (that *Board) CountColors() (int, int) {
	black, white := 0, 0

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch that[row][col] {
			case PlayerBlack:
				black++
			case PlayerWhite:
				white++
			}
		}
	}

	return black, white
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
