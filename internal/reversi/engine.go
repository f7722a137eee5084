package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// Point is a zero-based (row, col) board coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// The eight compass directions of the bracketing rule.
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// FlipsForMove decides whether placing color at (row, col) is legal and
// returns every opponent stone the move would flip. The board is never
// modified. A direction contributes flips only if one or more contiguous
// opponent stones sit directly next to the target cell and are closed off
// by a stone of color before the scan runs off the board or hits an empty
// cell. The same function backs the existence check, move listing and the
// apply step, so the rules cannot diverge between them.
func FlipsForMove(board *entity.Board, row, col int, color entity.Cell) ([]Point, error) {
	if !entity.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	if board[row][col] != entity.EmptyCell {
		return nil, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	opponent := color.Opponent()

	var flips []Point

	for _, dir := range directions {
		run := flips

		nextRow, nextCol := row+dir[0], col+dir[1]
		for entity.InBounds(nextRow, nextCol) && board[nextRow][nextCol] == opponent {
			run = append(run, Point{Row: nextRow, Col: nextCol})
			nextRow += dir[0]
			nextCol += dir[1]
		}

		if len(run) == len(flips) {
			continue // the direction must start with at least one opponent stone
		}

		if entity.InBounds(nextRow, nextCol) && board[nextRow][nextCol] == color {
			flips = run
		}
	}

	if len(flips) == 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", apperror.ErrNoCapture, row, col)
	}

	return flips, nil
}

// ApplyMove places color at (row, col) and flips every bracketed opponent
// stone. This is the only mutation path for the board after initialization.
func ApplyMove(board *entity.Board, row, col int, color entity.Cell) ([]Point, error) {
	flips, err := FlipsForMove(board, row, col, color)
	if err != nil {
		return nil, err
	}

	board[row][col] = color
	for _, point := range flips {
		board[point.Row][point.Col] = color
	}

	return flips, nil
}

// HasAnyMove reports whether color has at least one legal move,
// stopping at the first legal cell found.
func HasAnyMove(board *entity.Board, color entity.Cell) bool {
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			if _, err := FlipsForMove(board, row, col, color); err == nil {
				return true
			}
		}
	}

	return false
}

// LegalMoves enumerates every legal move for color in row-major order.
func LegalMoves(board *entity.Board, color entity.Cell) []Point {
	var moves []Point

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			if _, err := FlipsForMove(board, row, col, color); err == nil {
				moves = append(moves, Point{Row: row, Col: col})
			}
		}
	}

	return moves
}
