// Package engine picks moves for infinite tic-tac-toe with a depth-limited
// minimax search. Every call is independent; an Engine holds only settings and
// may be shared between goroutines.
package engine

import (
	"context"

	"infinite_ttt/internal/domain/tictactoe"
	errs "infinite_ttt/internal/errors"
)

const (
	// DefaultMaxDepth counts plies including the root move.
	DefaultMaxDepth = 6
	MaxSearchDepth  = 9
	NoMove          = -1
)

type Engine struct {
	maxDepth  int
	pruning   bool
	heuristic bool
}

type Option func(*Engine)

// WithMaxDepth clamps depth to [1, MaxSearchDepth].
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.maxDepth = min(max(depth, 1), MaxSearchDepth)
	}
}

// WithPruning toggles alpha-beta cutoffs. The chosen move does not depend on it.
func WithPruning(enabled bool) Option {
	return func(e *Engine) {
		e.pruning = enabled
	}
}

// WithHeuristic scores depth-limited leaves by open two-in-a-rows instead of 0.
func WithHeuristic(enabled bool) Option {
	return func(e *Engine) {
		e.heuristic = enabled
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		maxDepth: DefaultMaxDepth,
		pruning:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) MaxDepth() int { return e.maxDepth }

type Result struct {
	Index int
	Score int
	// Depth is the deepest fully searched ply count; 0 when nothing completed.
	Depth    int
	Nodes    int64
	Complete bool
}

// SelectMove returns the best cell for state.SideToMove searched to the full
// depth. Ties go to the lowest cell index.
func (e *Engine) SelectMove(state tictactoe.GameState) (int, error) {
	if err := checkPlayable(state); err != nil {
		return NoMove, err
	}
	s := e.newSearch(context.Background(), state.SideToMove)
	idx, _ := s.root(state, e.maxDepth)
	return idx, nil
}

// SelectMoveFor is the fixed-convention entry point: O to move.
func (e *Engine) SelectMoveFor(board []string, xQueue, oQueue []int) (int, error) {
	state, err := tictactoe.FromSnapshot(board, xQueue, oQueue, string(tictactoe.O))
	if err != nil {
		return NoMove, err
	}
	return e.SelectMove(state)
}

// SelectMoveContext deepens one ply at a time until MaxDepth or until ctx is
// done. An interrupted search reports the last completed depth. If not even
// depth 1 finished, the first empty cell is returned with ErrSearchAborted.
func (e *Engine) SelectMoveContext(ctx context.Context, state tictactoe.GameState) (Result, error) {
	if err := checkPlayable(state); err != nil {
		return Result{Index: NoMove}, err
	}
	s := e.newSearch(ctx, state.SideToMove)

	var last Result
	for depth := 1; depth <= e.maxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}
		idx, score := s.root(state, depth)
		if s.aborted {
			break
		}
		last = Result{Index: idx, Score: score, Depth: depth}
	}
	last.Nodes = s.nodes

	if last.Depth == 0 {
		last.Index = state.LegalMoves()[0]
		return last, errs.ErrSearchAborted
	}
	last.Complete = last.Depth == e.maxDepth
	return last, nil
}

func checkPlayable(state tictactoe.GameState) error {
	if state.Outcome() != tictactoe.InProgress {
		return errs.ErrGameOver
	}
	if len(state.LegalMoves()) == 0 {
		return errs.ErrNoLegalMove
	}
	return nil
}
