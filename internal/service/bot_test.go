package service

import (
	"testing"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_MakeTurn(t *testing.T) {
	botService := NewBotService()

	t.Run("Plays a legal move for the bot seat", func(t *testing.T) {
		// Given: a running game where the white seat is a bot and white moves
		game := entity.NewGame("123", entity.WithBotType)
		game.Status = entity.StatusOngoing
		game.Turn = entity.PlayerWhite
		game.Players = []*entity.Player{
			{ID: "human", Color: entity.PlayerBlack, GameID: game.ID},
			{ID: "bot:1", Color: entity.PlayerWhite, GameID: game.ID},
		}

		// When: the bot takes its turn
		err := botService.MakeTurn(game)

		// Then: exactly one stone was placed and the turn went to the human
		require.NoError(t, err)
		black, white := game.Board.CountColors()
		assert.Equal(t, 5, black+white)
		assert.Equal(t, entity.PlayerBlack, game.Turn)
	})

	t.Run("Returns ErrBotNotFound without a bot seat", func(t *testing.T) {
		game := entity.NewGame("123", entity.PrivateType)
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{
			{ID: "human", Color: entity.PlayerBlack, GameID: game.ID},
		}

		err := botService.MakeTurn(game)

		assert.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Returns ErrNoAvailableMoves when the bot cannot move", func(t *testing.T) {
		// Given: a board fully covered by the opponent
		game := entity.NewGame("123", entity.WithBotType)
		game.Status = entity.StatusOngoing
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				game.Board[row][col] = entity.PlayerBlack
			}
		}
		game.Players = []*entity.Player{
			{ID: "bot:1", Color: entity.PlayerWhite, GameID: game.ID},
		}

		err := botService.MakeTurn(game)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
