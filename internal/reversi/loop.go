package reversi

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// MoveSource supplies the next coordinate for one seat. The loop blocks on
// NextMove; the engine itself never blocks anywhere else.
type MoveSource interface {
	NextMove(ctx context.Context, game *entity.Game) (row, col int, err error)
}

// Run drives a single game synchronously to completion. Each visit to a
// turn asks the current player's source for one coordinate; a rejected
// move does not consume the turn, the same source is simply asked again.
func Run(ctx context.Context, game *entity.Game, sources map[entity.Cell]MoveSource) error {
	if game.IsWaiting() {
		game.Status = entity.StatusOngoing
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game loop canceled: %w", err)
		}

		source, ok := sources[game.Turn]
		if !ok {
			return fmt.Errorf("no move source for player %s", game.Turn)
		}

		row, col, err := source.NextMove(ctx, game)
		if err != nil {
			return fmt.Errorf("failed to get next move: %w", err)
		}

		if err = MakeTurn(game, game.Turn, row, col); err != nil {
			if isRejection(err) {
				continue
			}

			return fmt.Errorf("failed to make turn: %w", err)
		}
	}

	return nil
}

// isRejection reports whether err is a recoverable move rejection.
func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrOutOfRange) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNoCapture)
}
