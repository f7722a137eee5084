package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays one uniformly random legal move for the bot seat.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	moves := reversi.LegalMoves(&game.Board, botPlayer.Color)
	if len(moves) == 0 {
		return ErrNoAvailableMoves
	}

	chosenMove := moves[rand.Intn(len(moves))] //nolint: gosec // it's ok

	if err := reversi.MakeTurn(game, botPlayer.Color, chosenMove.Row, chosenMove.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
