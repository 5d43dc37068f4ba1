package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"infinite_ttt/internal/domain/tictactoe"
	"infinite_ttt/internal/engine"
	errs "infinite_ttt/internal/errors"
	engineRPC "infinite_ttt/microservices/proto"
)

type EngineStore interface {
	SelectMove(ctx context.Context, state tictactoe.GameState) (engine.Result, error)
}

type EngineUseCase struct {
	store EngineStore
	log   *zap.SugaredLogger
	engineRPC.UnimplementedMoveEngineServer
}

func NewEngineUseCase(store EngineStore, log *zap.SugaredLogger) *EngineUseCase {
	return &EngineUseCase{
		store: store,
		log:   log,
	}
}

// SelectMove answers with a partial result instead of an error when the
// caller's deadline cuts the search short, so the caller can still move.
func (e *EngineUseCase) SelectMove(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := engineRPC.DecodeMoveRequest(in)
	if err != nil {
		return nil, engineRPC.InvalidArgument(err)
	}
	state, err := tictactoe.FromSnapshot(req.Board, req.XQueue, req.OQueue, req.Side)
	if err != nil {
		return nil, engineRPC.InvalidArgument(err)
	}

	res, err := e.store.SelectMove(ctx, state)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrSearchAborted):
		e.log.Warnf("search for %s aborted, answering cell %d", state.Key(), res.Index)
		res = engine.Result{Index: res.Index}
	case errors.Is(err, errs.ErrGameOver):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	default:
		e.log.Errorf("search for %s failed: %v", state.Key(), err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	return engineRPC.EncodeMoveReply(engineRPC.MoveReply{
		Index:    res.Index,
		Depth:    res.Depth,
		Complete: res.Complete,
	})
}
