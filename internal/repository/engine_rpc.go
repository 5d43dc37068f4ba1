package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"infinite_ttt/internal/domain/game"
	"infinite_ttt/internal/domain/tictactoe"
	"infinite_ttt/internal/engine"
	errs "infinite_ttt/internal/errors"
	engineRPC "infinite_ttt/microservices/proto"
)

// RemoteEngine searches through the engine microservice. maxDepth must match
// the depth the service is configured with since it is part of the cache key.
type RemoteEngine struct {
	log      *zap.SugaredLogger
	client   engineRPC.MoveEngineClient
	maxDepth int
}

func NewRemoteEngine(log *zap.SugaredLogger, client engineRPC.MoveEngineClient, maxDepth int) *RemoteEngine {
	return &RemoteEngine{
		log:      log,
		client:   client,
		maxDepth: maxDepth,
	}
}

func (r *RemoteEngine) MaxDepth() int { return r.maxDepth }

func (r *RemoteEngine) SelectMoveContext(ctx context.Context, state tictactoe.GameState) (engine.Result, error) {
	in, err := engineRPC.EncodeMoveRequest(game.MoveRequest{
		Board:  state.Board.Strings(),
		XQueue: state.XQueue.Slice(),
		OQueue: state.OQueue.Slice(),
		Side:   string(state.SideToMove),
	})
	if err != nil {
		return engine.Result{Index: engine.NoMove}, fmt.Errorf("%w: encode move request: %v", errs.ErrInternal, err)
	}

	out, err := r.client.SelectMove(ctx, in)
	if err != nil {
		return r.mapError(state, err)
	}

	reply, err := engineRPC.DecodeMoveReply(out)
	if err != nil {
		return engine.Result{Index: engine.NoMove}, fmt.Errorf("%w: decode move reply: %v", errs.ErrInternal, err)
	}
	if reply.Index < 0 || reply.Index >= tictactoe.BoardCells || state.Board[reply.Index] != tictactoe.Empty {
		return engine.Result{Index: engine.NoMove}, fmt.Errorf("%w: engine answered unplayable cell %d", errs.ErrInternal, reply.Index)
	}

	res := engine.Result{Index: reply.Index, Depth: reply.Depth, Complete: reply.Complete}
	if res.Depth == 0 {
		return res, errs.ErrSearchAborted
	}
	return res, nil
}

func (r *RemoteEngine) mapError(state tictactoe.GameState, err error) (engine.Result, error) {
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return engine.Result{Index: engine.NoMove}, fmt.Errorf("%w: %s", engineRPC.InvalidArgumentCause(st), st.Message())
	case codes.FailedPrecondition:
		return engine.Result{Index: engine.NoMove}, errs.ErrGameOver
	case codes.DeadlineExceeded, codes.Canceled:
		legal := state.LegalMoves()
		if len(legal) == 0 {
			return engine.Result{Index: engine.NoMove}, errs.ErrNoLegalMove
		}
		return engine.Result{Index: legal[0]}, errs.ErrSearchAborted
	default:
		r.log.Errorf("engine rpc failed: %v", err)
		return engine.Result{Index: engine.NoMove}, fmt.Errorf("%w: engine rpc: %v", errs.ErrInternal, st.Message())
	}
}
