package tictactoe

import (
	"fmt"

	errs "infinite_ttt/internal/errors"
)

// GameState is a snapshot of an infinite tic-tac-toe position. It is passed and
// returned by value; Play never mutates the receiver.
type GameState struct {
	Board      Board
	XQueue     MoveQueue
	OQueue     MoveQueue
	SideToMove Mark
}

func NewGame() GameState {
	return GameState{SideToMove: X}
}

// NewGameState checks that the queues describe exactly the marks on the board.
func NewGameState(board Board, xQueue, oQueue MoveQueue, side Mark) (GameState, error) {
	s := GameState{Board: board, XQueue: xQueue, OQueue: oQueue, SideToMove: side}
	if side != X && side != O {
		return s, fmt.Errorf("%w: %q", errs.ErrInvalidSide, side)
	}
	for _, p := range []struct {
		mark  Mark
		queue MoveQueue
	}{{X, xQueue}, {O, oQueue}} {
		if got := board.Count(p.mark); got != p.queue.Len() {
			return s, fmt.Errorf("%w: %d %s marks on board but %d queued", errs.ErrInvalidQueue, got, p.mark, p.queue.Len())
		}
		for _, idx := range p.queue.Slice() {
			if board[idx] != p.mark {
				return s, fmt.Errorf("%w: queued %s index %d holds %q", errs.ErrInvalidQueue, p.mark, idx, board[idx])
			}
		}
	}
	return s, nil
}

// FromSnapshot builds a state from the wire representation.
func FromSnapshot(cells []string, xQueue, oQueue []int, side string) (GameState, error) {
	board, err := ParseBoard(cells)
	if err != nil {
		return GameState{}, err
	}
	xq, err := NewMoveQueue(xQueue)
	if err != nil {
		return GameState{}, fmt.Errorf("xQueue: %w", err)
	}
	oq, err := NewMoveQueue(oQueue)
	if err != nil {
		return GameState{}, fmt.Errorf("oQueue: %w", err)
	}
	mover, err := ParseSide(side)
	if err != nil {
		return GameState{}, err
	}
	return NewGameState(board, xq, oq, mover)
}

func (s GameState) Queue(m Mark) MoveQueue {
	if m == X {
		return s.XQueue
	}
	return s.OQueue
}

func (s GameState) LegalMoves() []int {
	return s.Board.EmptyCells()
}

func (s GameState) Outcome() Outcome {
	return s.Board.Outcome()
}

// NextEviction is the cell the side to move loses on its next placement, or -1.
func (s GameState) NextEviction() int {
	q := s.Queue(s.SideToMove)
	if !q.Full() {
		return -1
	}
	return q.Oldest()
}

// Play places the side to move's mark on idx. When that side already has
// QueueCap marks the oldest one is cleared in the same step.
func (s GameState) Play(idx int) (GameState, error) {
	if idx < 0 || idx >= BoardCells {
		return s, fmt.Errorf("%w: index %d out of range", errs.ErrIllegalMove, idx)
	}
	if s.Board[idx] != Empty {
		return s, fmt.Errorf("%w: cell %d is occupied", errs.ErrIllegalMove, idx)
	}
	return s.Advance(idx), nil
}

// Advance is Play without the legality check; idx must be an empty cell.
func (s GameState) Advance(idx int) GameState {
	mover := s.SideToMove
	q := &s.OQueue
	if mover == X {
		q = &s.XQueue
	}
	if evicted := q.Push(idx); evicted >= 0 {
		s.Board[evicted] = Empty
	}
	s.Board[idx] = mover
	s.SideToMove = mover.Opponent()
	return s
}

// Key identifies the position for caching.
func (s GameState) Key() string {
	return fmt.Sprintf("%s:%s:%s:%s", s.SideToMove, s.Board, s.XQueue, s.OQueue)
}
