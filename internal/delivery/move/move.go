package move

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"infinite_ttt/internal/domain/game"
	errs "infinite_ttt/internal/errors"
	"infinite_ttt/internal/httpresponse"
	"infinite_ttt/internal/utils"
)

type MoveSuggester interface {
	SuggestMove(ctx context.Context, req game.MoveRequest) (int, error)
}

type MoveHandler struct {
	log    *zap.SugaredLogger
	moveUC MoveSuggester
}

func NewMoveHandler(log *zap.SugaredLogger, moveUC MoveSuggester) *MoveHandler {
	return &MoveHandler{
		log:    log,
		moveUC: moveUC,
	}
}

// HandlePlay answers {index} for the side to move. A finished position is
// not an error: it answers {index: -1}.
func (m *MoveHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		httpresponse.WriteError(m.log, w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc+": "+err.Error())
		return
	}

	idx, err := m.moveUC.SuggestMove(r.Context(), req)
	switch {
	case err == nil:
		httpresponse.WriteJSON(m.log, w, http.StatusOK, game.MoveResponse{Index: idx})
	case errors.Is(err, errs.ErrGameOver):
		httpresponse.WriteJSON(m.log, w, http.StatusOK, game.MoveResponse{Index: -1})
	case errors.Is(err, errs.ErrInvalidBoard),
		errors.Is(err, errs.ErrInvalidQueue),
		errors.Is(err, errs.ErrInvalidSide):
		httpresponse.WriteError(m.log, w, http.StatusBadRequest, err.Error())
	default:
		m.log.Errorf("failed to select move: %v", err)
		httpresponse.WriteError(m.log, w, http.StatusInternalServerError, "failed to select move")
	}
}
