package reversi

import (
	"testing"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOngoingGame() *entity.Game {
	game := entity.NewGame("123", entity.PrivateType)
	game.Status = entity.StatusOngoing

	return game
}

func TestMakeTurn(t *testing.T) {
	t.Run("Successful opening move", func(t *testing.T) {
		// Given: a running game, black to move
		game := newOngoingGame()

		// When: black plays (2,3)
		err := MakeTurn(game, entity.PlayerBlack, 2, 3)

		// Then: the score is 4-1, white is to move, no passes recorded
		require.NoError(t, err)
		assert.Equal(t, 4, game.BlackScore)
		assert.Equal(t, 1, game.WhiteScore)
		assert.Equal(t, entity.PlayerWhite, game.Turn)
		assert.Equal(t, 0, game.PassCount)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a running game, black to move
		game := newOngoingGame()
		before := *game

		// When: white tries to move first
		err := MakeTurn(game, entity.PlayerWhite, 2, 4)

		// Then: the move is rejected and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		game := newOngoingGame()
		game.Finish()

		err := MakeTurn(game, entity.PlayerBlack, 2, 3)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error on occupied cell leaves the game unchanged", func(t *testing.T) {
		// Given: a running game
		game := newOngoingGame()
		before := *game

		// When: black targets an occupied center cell
		err := MakeTurn(game, entity.PlayerBlack, 3, 3)

		// Then: CellOccupied is reported, nothing moved
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on capture-less cell leaves the game unchanged", func(t *testing.T) {
		game := newOngoingGame()
		before := *game

		err := MakeTurn(game, entity.PlayerBlack, 0, 0)

		require.ErrorIs(t, err, apperror.ErrNoCapture)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on out-of-range coordinate leaves the game unchanged", func(t *testing.T) {
		game := newOngoingGame()
		before := *game

		err := MakeTurn(game, entity.PlayerBlack, 8, 0)

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Equal(t, before, *game)
	})

	t.Run("Wiping out the opponent ends the game by double pass", func(t *testing.T) {
		// Given: a running game with a single white stone left to take
		game := newOngoingGame()
		game.Board = entity.Board{}
		require.NoError(t, game.Board.Set(0, 0, entity.PlayerBlack))
		require.NoError(t, game.Board.Set(0, 1, entity.PlayerWhite))
		game.SyncScore()

		// When: black captures it
		err := MakeTurn(game, entity.PlayerBlack, 0, 2)

		// Then: neither player can move and the game finishes 3-0
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, string(entity.PlayerBlack), game.Winner)
		assert.Equal(t, 3, game.BlackScore)
		assert.Equal(t, 0, game.WhiteScore)
		assert.Equal(t, 3, game.Margin())
	})
}

func TestPass(t *testing.T) {
	t.Run("A forced pass hands the turn over without touching the board", func(t *testing.T) {
		// Given: a running game, black to move
		game := newOngoingGame()
		boardBefore := game.Board

		// When: black passes
		Pass(game)

		// Then: the pass is counted, white is to move, the board is untouched
		assert.Equal(t, 1, game.PassCount)
		assert.Equal(t, entity.PlayerWhite, game.Turn)
		assert.Equal(t, boardBefore, game.Board)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("The second consecutive pass finishes the game on stone counts", func(t *testing.T) {
		// Given: a running game with one pass already recorded
		game := newOngoingGame()
		require.NoError(t, game.Board.Set(0, 0, entity.PlayerWhite))
		game.PassCount = 1

		// When: the second pass happens
		Pass(game)

		// Then: the game is over and white wins 3-2
		assert.True(t, game.IsFinished())
		assert.Equal(t, string(entity.PlayerWhite), game.Winner)
		assert.Equal(t, 2, game.PassCount)
	})
}

// TestSelfPlayTermination plays full games with a deterministic first-legal
// -move policy and checks the reachable-state invariants along the way.
func TestSelfPlayTermination(t *testing.T) {
	game := newOngoingGame()

	occupied := func(board *entity.Board) int {
		black, white := board.CountColors()
		return black + white
	}

	// 60 placements plus passes bound the game; leave generous slack
	const maxTurns = 100

	turns := 0
	for !game.IsFinished() && turns < maxTurns {
		moves := LegalMoves(&game.Board, game.Turn)
		require.NotEmpty(t, moves, "the player to move must always have a legal move")

		stonesBefore := occupied(&game.Board)
		boardBefore := game.Board

		require.NoError(t, MakeTurn(game, game.Turn, moves[0].Row, moves[0].Col))
		turns++

		// occupancy grows by exactly the placed stone
		stonesAfter := occupied(&game.Board)
		assert.Equal(t, stonesBefore+1, stonesAfter)

		// stones never leave the board once placed
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				if boardBefore[row][col] != entity.EmptyCell {
					assert.NotEqual(t, entity.EmptyCell, game.Board[row][col])
				}
			}
		}

		// the stone counts and empties always sum to 64
		empty := 0
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				if game.Board[row][col] == entity.EmptyCell {
					empty++
				}
			}
		}
		black, white := game.Board.CountColors()
		assert.Equal(t, 64, black+white+empty)
	}

	require.True(t, game.IsFinished(), "self-play must terminate within %d turns", maxTurns)
	assert.LessOrEqual(t, turns, 60)
	assert.Contains(t, []string{string(entity.PlayerBlack), string(entity.PlayerWhite), entity.PlayerTie}, game.Winner)
}
