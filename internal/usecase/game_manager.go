package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/pkg"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type archiveRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Find(ctx context.Context, id string) (*repository.ArchivedGame, error)
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

type GameManager struct {
	logger      *slog.Logger
	playerRepo  playerRepo
	gameRepo    gameRepo
	archiveRepo archiveRepo
	botService  botService
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, archiveRepo archiveRepo, botService botService) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo:  playerRepo,
		gameRepo:    gameRepo,
		archiveRepo: archiveRepo,
		botService:  botService,
	}
}

// MakeTurn plays one move for the player at the zero-based (row, col)
// coordinate. Passes forced by the rules are resolved inside the engine; if
// the opponent seat is a bot, its reply is played here before persisting.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	if err = reversi.MakeTurn(game, player.Color, row, col); err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.playBotReplies(game); err != nil {
		return nil, fmt.Errorf("failed bot reply: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	return game, nil
}

// playBotReplies keeps the bot moving while it holds the turn; forced
// passes can hand the turn straight back to it.
func (that *GameManager) playBotReplies(game *entity.Game) error {
	if !game.IsWithBot() {
		return nil
	}

	for !game.IsFinished() {
		botHasTurn := false
		for _, player := range game.Players {
			if player.IsBot() && player.Color == game.Turn {
				botHasTurn = true
			}
		}

		if !botHasTurn {
			return nil
		}

		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot turn failed: %w", err)
		}
	}

	return nil
}

func (that *GameManager) ConnectToGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	existingGame, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	if player.GameID == existingGame.ID {
		return existingGame, nil
	}

	if len(existingGame.Players) == 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, gameID)
	}

	player.GameID = existingGame.ID
	player.Color = entity.PlayerWhite
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed update player by id: %w", err)
	}

	existingGame.Status = entity.StatusOngoing
	existingGame.Players = append(existingGame.Players, player)
	if err = that.updateGame(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed update game by id: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	if player.GameID == "" {
		existingGame, err := that.createGame(ctx, player, gameType)
		if err != nil {
			return nil, fmt.Errorf("failed create game: %w", err)
		}

		return existingGame, nil
	}

	existingGame, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) InGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	return game, nil
}

// FindArchivedGame looks up the permanent record of a finished game.
func (that *GameManager) FindArchivedGame(ctx context.Context, gameID string) (*repository.ArchivedGame, error) {
	archived, err := that.archiveRepo.Find(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to find archived game: %w", err)
	}

	return archived, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, error) {
	gameID := pkg.GenerateGameID()
	player.GameID = gameID
	player.Color = entity.PlayerBlack

	newGame := entity.NewGame(gameID, gameType)
	newGame.Players = []*entity.Player{player}

	if gameType == entity.WithBotType {
		if err := that.seatBot(ctx, newGame, player); err != nil {
			return nil, fmt.Errorf("failed to seat bot: %w", err)
		}
	}

	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed update player: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return newGame, nil
}

// seatBot adds a bot opponent and starts the game immediately. Colors are
// dealt at random; a black bot plays the opening move right away.
func (that *GameManager) seatBot(ctx context.Context, game *entity.Game, player *entity.Player) error {
	botPlayer := &entity.Player{
		ID:     "bot:" + pkg.GenerateNewSessionID(),
		GameID: game.ID,
	}

	player.Color, botPlayer.Color = game.GetRandomColors()

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	if err := that.updatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed update bot player: %w", err)
	}

	if err := that.playBotReplies(game); err != nil {
		return fmt.Errorf("failed bot opening move: %w", err)
	}

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// finishGame archives the final score and releases the live state.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame")

	if err := that.archiveRepo.Save(ctx, game); err != nil {
		log.Error("failed to archive game", "error", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		player.Color = entity.EmptyCell
		player.GameID = ""

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "error", err)
		}
	}

	log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		player = &entity.Player{ID: id}
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return player, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	playerID := pkg.GenerateNewSessionID()

	player := &entity.Player{
		ID: playerID,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
