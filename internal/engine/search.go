package engine

import (
	"context"

	"infinite_ttt/internal/domain/tictactoe"
)

const (
	winScore = 10
	infinity = 1000

	// ctx is polled once per this many nodes.
	pollMask = 1<<10 - 1
)

type search struct {
	ctx       context.Context
	maximizer tictactoe.Mark
	pruning   bool
	heuristic bool
	maxDepth  int
	nodes     int64
	aborted   bool
}

func (e *Engine) newSearch(ctx context.Context, maximizer tictactoe.Mark) *search {
	return &search{
		ctx:       ctx,
		maximizer: maximizer,
		pruning:   e.pruning,
		heuristic: e.heuristic,
	}
}

// root tries every legal move of the maximizer and keeps the first one with
// the highest score. maxDepth counts the root move itself.
func (s *search) root(state tictactoe.GameState, maxDepth int) (int, int) {
	s.maxDepth = maxDepth
	bestIdx, bestScore := NoMove, -infinity
	alpha, beta := -infinity, infinity

	for _, idx := range state.LegalMoves() {
		score := s.minimax(state.Advance(idx), 0, alpha, beta)
		if s.aborted {
			return NoMove, 0
		}
		if score > bestScore {
			bestIdx, bestScore = idx, score
		}
		if s.pruning && bestScore > alpha {
			alpha = bestScore
		}
	}
	return bestIdx, bestScore
}

// minimax scores state from the maximizer's point of view. depth is the number
// of plies played after the root move.
func (s *search) minimax(state tictactoe.GameState, depth int, alpha, beta int) int {
	s.nodes++
	if s.nodes&pollMask == 0 && s.ctx.Err() != nil {
		s.aborted = true
		return 0
	}

	if winner, _, ok := state.Board.Winner(); ok {
		if winner == s.maximizer {
			return winScore - depth
		}
		return depth - winScore
	}
	if depth >= s.maxDepth-1 {
		return s.leaf(state)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	if state.SideToMove == s.maximizer {
		best := -infinity
		for _, idx := range moves {
			score := s.minimax(state.Advance(idx), depth+1, alpha, beta)
			if s.aborted {
				return 0
			}
			best = max(best, score)
			if s.pruning {
				alpha = max(alpha, best)
				if alpha >= beta {
					break
				}
			}
		}
		return best
	}

	best := infinity
	for _, idx := range moves {
		score := s.minimax(state.Advance(idx), depth+1, alpha, beta)
		if s.aborted {
			return 0
		}
		best = min(best, score)
		if s.pruning {
			beta = min(beta, best)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}
