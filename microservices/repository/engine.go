package repository

import (
	"context"

	"go.uber.org/zap"

	"infinite_ttt/internal/bootstrap"
	"infinite_ttt/internal/domain/tictactoe"
	"infinite_ttt/internal/engine"
)

// EngineRepository runs searches in this process on behalf of remote callers.
type EngineRepository struct {
	cfg    *bootstrap.Config
	log    *zap.SugaredLogger
	engine *engine.Engine
}

func NewEngineRepository(cfg *bootstrap.Config, log *zap.SugaredLogger) *EngineRepository {
	return &EngineRepository{
		cfg: cfg,
		log: log,
		engine: engine.New(
			engine.WithMaxDepth(cfg.EngineMaxDepth),
			engine.WithPruning(cfg.EnginePruning),
			engine.WithHeuristic(cfg.EngineHeuristic),
		),
	}
}

func (e *EngineRepository) SelectMove(ctx context.Context, state tictactoe.GameState) (engine.Result, error) {
	res, err := e.engine.SelectMoveContext(ctx, state)
	if err != nil {
		return res, err
	}
	e.log.Debugw("search finished",
		"key", state.Key(),
		"index", res.Index,
		"depth", res.Depth,
		"nodes", res.Nodes,
		"complete", res.Complete,
	)
	return res, nil
}
