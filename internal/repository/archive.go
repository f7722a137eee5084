package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

var ErrArchivedGameNotFound = errors.New("archived game not found")

// ArchivedGame is the permanent record of a finished match.
type ArchivedGame struct {
	ID         string `json:"id"`
	Winner     string `json:"winner"`
	BlackScore int    `json:"black_score"`
	WhiteScore int    `json:"white_score"`
	FinishedAt string `json:"finished_at"`
}

type ArchiveRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	Find(ctx context.Context, id string) (*ArchivedGame, error)
}

type archiveRepository struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &archiveRepository{
		conn: conn,
	}
}

func (that *archiveRepository) Save(ctx context.Context, game *entity.Game) error {
	query := `INSERT OR REPLACE INTO games (id, winner, black_score, white_score, finished_at)
		VALUES (?, ?, ?, ?, ?)`

	finishedAt := time.Now().UTC().Format(time.RFC3339)

	_, err := that.conn.ExecContext(ctx, query, game.ID, game.Winner, game.BlackScore, game.WhiteScore, finishedAt)
	if err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	return nil
}

func (that *archiveRepository) Find(ctx context.Context, id string) (*ArchivedGame, error) {
	query := `SELECT id, winner, black_score, white_score, finished_at FROM games WHERE id = ?`

	var game ArchivedGame

	err := that.conn.QueryRowContext(ctx, query, id).
		Scan(&game.ID, &game.Winner, &game.BlackScore, &game.WhiteScore, &game.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArchivedGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find game: %w", err)
	}

	return &game, nil
}
