package apperror

import "errors"

var (
	ErrGameOver         = errors.New("game is already over")
	ErrWrongTurn        = errors.New("it's not your turn")
	ErrPositionOccupied = errors.New("position is already occupied")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrMatchNotFound    = errors.New("match not found")
)
