package tictactoe

import (
	"fmt"

	errs "infinite_ttt/internal/errors"
)

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

func ParseMark(s string) (Mark, error) {
	switch Mark(s) {
	case Empty, X, O:
		return Mark(s), nil
	}
	return Empty, fmt.Errorf("%w: unknown cell value %q", errs.ErrInvalidBoard, s)
}

// ParseSide accepts "X" or "O"; an empty string means O, the side the AI plays.
func ParseSide(s string) (Mark, error) {
	switch Mark(s) {
	case Empty, O:
		return O, nil
	case X:
		return X, nil
	}
	return Empty, fmt.Errorf("%w: %q", errs.ErrInvalidSide, s)
}

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	}
	return "in_progress"
}
