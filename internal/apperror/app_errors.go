package apperror

import "errors"

var (
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameEnded       = errors.New("game has already ended")
	ErrInvalidCell     = errors.New("invalid cell position")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrSessionNotFound = errors.New("session not found")
)
