package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// MakeTurn applies one move for player and advances the turn state machine.
// A rejected move (out of range, occupied cell, no capture, wrong turn)
// leaves the game completely unchanged and the same player to move.
func MakeTurn(game *entity.Game, player entity.Cell, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if _, err := ApplyMove(&game.Board, row, col, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.PassCount = 0
	game.SyncScore()
	advanceTurn(game)

	return nil
}

// Pass records a forced pass for the player to move: the board is left
// untouched and the turn goes to the opponent. The second consecutive pass
// finishes the game.
func Pass(game *entity.Game) {
	game.PassCount++
	if game.PassCount >= entity.MaxPassCount {
		game.Finish()
		return
	}

	game.Turn = game.Turn.Opponent()
}

// advanceTurn hands the move to the opponent, resolving forced passes as it
// goes. It terminates after at most two passes.
func advanceTurn(game *entity.Game) {
	game.Turn = game.Turn.Opponent()

	for !game.IsFinished() {
		if HasAnyMove(&game.Board, game.Turn) {
			game.PassCount = 0
			return
		}

		Pass(game)
	}
}
