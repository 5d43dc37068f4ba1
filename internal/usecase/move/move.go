package move

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"infinite_ttt/internal/domain/game"
	"infinite_ttt/internal/domain/tictactoe"
	"infinite_ttt/internal/engine"
	errs "infinite_ttt/internal/errors"
)

// Searcher is either the in-process engine or the remote engine client.
type Searcher interface {
	SelectMoveContext(ctx context.Context, state tictactoe.GameState) (engine.Result, error)
	MaxDepth() int
}

type MoveCache interface {
	GetMove(ctx context.Context, key string, depth int) (int, bool, error)
	SaveMove(ctx context.Context, key string, depth int, idx int) error
}

type MoveUseCase struct {
	log      *zap.SugaredLogger
	searcher Searcher
	cache    MoveCache
	sem      *semaphore.Weighted
	budget   time.Duration
}

// NewMoveUseCase wires a searcher. cache may be nil; budget <= 0 disables the
// wall-clock limit; maxConcurrent <= 0 means one search at a time.
func NewMoveUseCase(log *zap.SugaredLogger, searcher Searcher, cache MoveCache, budget time.Duration, maxConcurrent int64) *MoveUseCase {
	return &MoveUseCase{
		log:      log,
		searcher: searcher,
		cache:    cache,
		sem:      semaphore.NewWeighted(max(maxConcurrent, 1)),
		budget:   budget,
	}
}

func (m *MoveUseCase) SuggestMove(ctx context.Context, req game.MoveRequest) (int, error) {
	state, err := tictactoe.FromSnapshot(req.Board, req.XQueue, req.OQueue, req.Side)
	if err != nil {
		return engine.NoMove, err
	}
	return m.BestMove(ctx, state)
}

// BestMove never fails for a playable state because of time: an exhausted
// budget yields the best move found so far, or the first empty cell.
func (m *MoveUseCase) BestMove(ctx context.Context, state tictactoe.GameState) (int, error) {
	if state.Outcome() != tictactoe.InProgress {
		return engine.NoMove, errs.ErrGameOver
	}
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return engine.NoMove, errs.ErrNoLegalMove
	}

	key, depth := state.Key(), m.searcher.MaxDepth()
	if idx, ok := m.cachedMove(ctx, state, key, depth); ok {
		return idx, nil
	}

	if err := m.sem.Acquire(ctx, 1); err != nil {
		m.log.Warnf("no search slot for %s: %v, falling back to cell %d", key, err, legal[0])
		return legal[0], nil
	}
	defer m.sem.Release(1)

	searchCtx := ctx
	if m.budget > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, m.budget)
		defer cancel()
	}

	start := time.Now()
	res, err := m.searcher.SelectMoveContext(searchCtx, state)
	if errors.Is(err, errs.ErrSearchAborted) {
		m.log.Warnf("search for %s aborted after %s, falling back to cell %d", key, time.Since(start), res.Index)
		return res.Index, nil
	}
	if err != nil {
		return engine.NoMove, err
	}

	if !res.Complete {
		m.log.Warnf("search for %s stopped at depth %d/%d after %s", key, res.Depth, depth, time.Since(start))
		return res.Index, nil
	}

	m.log.Debugf("search for %s: cell %d score %d nodes %d in %s", key, res.Index, res.Score, res.Nodes, time.Since(start))
	if m.cache != nil {
		if err := m.cache.SaveMove(ctx, key, depth, res.Index); err != nil {
			m.log.Warnf("move cache write failed: %v", err)
		}
	}
	return res.Index, nil
}

func (m *MoveUseCase) cachedMove(ctx context.Context, state tictactoe.GameState, key string, depth int) (int, bool) {
	if m.cache == nil {
		return 0, false
	}
	idx, ok, err := m.cache.GetMove(ctx, key, depth)
	if err != nil {
		m.log.Warnf("move cache read failed: %v", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}
	if idx < 0 || idx >= tictactoe.BoardCells || state.Board[idx] != tictactoe.Empty {
		m.log.Warnf("ignoring cached move %d for %s", idx, key)
		return 0, false
	}
	return idx, true
}
