package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoActiveGames     = errors.New("no active games")
	ErrGameAlreadyExists = errors.New("game already exists")

	ErrOutOfRange   = errors.New("coordinate is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNoCapture    = errors.New("move captures no opponent stones")
)
