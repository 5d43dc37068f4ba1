package errors

import "errors"

var (
	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidQueue  = errors.New("invalid move queue")
	ErrInvalidSide   = errors.New("invalid side to move")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is already over")
	ErrNoLegalMove   = errors.New("no legal move on a non-terminal board")
	ErrSearchAborted = errors.New("search aborted before any depth completed")
	ErrInvalidMatch  = errors.New("invalid match")
	ErrMatchNotSaved = errors.New("match was not saved")
	ErrInternal      = errors.New("internal error")
)
