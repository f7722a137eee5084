package entity

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

// MaxPassCount ends the game: two consecutive players without a legal move.
const MaxPassCount = 2

// Game is one reversi match. Board, Turn and PassCount together form the
// turn state machine; Winner and the scores are only meaningful once
// Status is StatusFinished.
type Game struct {
	ID         string    `json:"id"`
	Board      Board     `json:"board"`
	Turn       Cell      `json:"player_turn,omitempty"`
	PassCount  int       `json:"pass_count"`
	Winner     string    `json:"winner,omitempty"`
	BlackScore int       `json:"black_score"`
	WhiteScore int       `json:"white_score"`
	Status     string    `json:"status"`
	Players    []*Player `json:"players,omitempty"`
	Type       string    `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	game := &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   PlayerBlack,
		Status: StatusWaiting,
		Type:   gameType,
	}
	game.SyncScore()

	return game
}

// SyncScore recomputes the stone counts from the board.
func (that *Game) SyncScore() {
	that.BlackScore, that.WhiteScore = that.Board.CountColors()
}

// Finish closes the game and derives the outcome strictly from the stone
// counts: the greater count wins, equal counts is a tie.
func (that *Game) Finish() {
	that.SyncScore()

	switch {
	case that.BlackScore > that.WhiteScore:
		that.Winner = string(PlayerBlack)
	case that.WhiteScore > that.BlackScore:
		that.Winner = string(PlayerWhite)
	default:
		that.Winner = PlayerTie
	}

	that.Status = StatusFinished
	that.Turn = EmptyCell
}

// Margin is the winning margin in stones; zero for a tie or a running game.
func (that *Game) Margin() int {
	diff := that.BlackScore - that.WhiteScore
	if diff < 0 {
		return -diff
	}

	return diff
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// GetRandomColors deals the two seat colors in random order.
func (that *Game) GetRandomColors() (Cell, Cell) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerBlack, PlayerWhite
	}
	return PlayerWhite, PlayerBlack
}
