package reversi

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcSource adapts a plain function to the MoveSource interface.
type funcSource func(ctx context.Context, game *entity.Game) (int, int, error)

func (that funcSource) NextMove(ctx context.Context, game *entity.Game) (int, int, error) {
	return that(ctx, game)
}

// firstLegalMove is a deterministic policy for driving full games.
var firstLegalMove = funcSource(func(_ context.Context, game *entity.Game) (int, int, error) {
	moves := LegalMoves(&game.Board, game.Turn)
	if len(moves) == 0 {
		return 0, 0, nil
	}

	return moves[0].Row, moves[0].Col, nil
})

var errScriptDone = errors.New("script exhausted")

// scriptedSource replays a fixed queue of coordinates.
type scriptedSource struct {
	moves []Point
}

func (that *scriptedSource) NextMove(_ context.Context, _ *entity.Game) (int, int, error) {
	if len(that.moves) == 0 {
		return 0, 0, errScriptDone
	}

	move := that.moves[0]
	that.moves = that.moves[1:]

	return move.Row, move.Col, nil
}

func TestRun(t *testing.T) {
	t.Run("Drives a full game to completion", func(t *testing.T) {
		// Given: a fresh game and one deterministic source per seat
		game := entity.NewGame("123", entity.PrivateType)
		sources := map[entity.Cell]MoveSource{
			entity.PlayerBlack: firstLegalMove,
			entity.PlayerWhite: firstLegalMove,
		}

		// When: the loop runs
		err := Run(context.Background(), game, sources)

		// Then: the game reached its terminal state with a valid outcome
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.NotEmpty(t, game.Winner)
	})

	t.Run("A rejected move is retried without consuming the turn", func(t *testing.T) {
		// Given: a black source that first targets an occupied cell, then an
		// empty cell with no capture, then a legal move
		game := entity.NewGame("123", entity.PrivateType)
		black := &scriptedSource{moves: []Point{
			{Row: 3, Col: 3}, // occupied
			{Row: 0, Col: 0}, // no capture
			{Row: 2, Col: 3}, // legal
		}}
		white := &scriptedSource{moves: []Point{
			{Row: 2, Col: 2}, // legal reply after black's (2,3)
		}}

		sources := map[entity.Cell]MoveSource{
			entity.PlayerBlack: black,
			entity.PlayerWhite: white,
		}

		// When: running until the scripts are exhausted
		err := Run(context.Background(), game, sources)

		// Then: both scripted legal moves landed despite the rejections
		require.ErrorIs(t, err, errScriptDone)
		assert.Equal(t, entity.PlayerBlack, game.Board[2][3])
		assert.Equal(t, entity.PlayerWhite, game.Board[2][2])
	})

	t.Run("Fails when a seat has no move source", func(t *testing.T) {
		game := entity.NewGame("123", entity.PrivateType)
		sources := map[entity.Cell]MoveSource{
			entity.PlayerBlack: firstLegalMove,
		}

		err := Run(context.Background(), game, sources)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no move source")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		game := entity.NewGame("123", entity.PrivateType)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, game, map[entity.Cell]MoveSource{
			entity.PlayerBlack: firstLegalMove,
			entity.PlayerWhite: firstLegalMove,
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, game.IsFinished())
	})
}
