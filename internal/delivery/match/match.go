package match

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"infinite_ttt/internal/domain/match"
	errs "infinite_ttt/internal/errors"
	"infinite_ttt/internal/httpresponse"
	"infinite_ttt/internal/utils"
)

type MatchService interface {
	SaveMatch(ctx context.Context, req match.SaveMatchRequest) (match.Match, error)
	GetStats(ctx context.Context, player string) (match.StatsResponse, error)
	GetLeaderboard(ctx context.Context, limit int) ([]match.LeaderboardEntry, error)
}

type MatchHandler struct {
	log     *zap.SugaredLogger
	matchUC MatchService
}

func NewMatchHandler(log *zap.SugaredLogger, matchUC MatchService) *MatchHandler {
	return &MatchHandler{
		log:     log,
		matchUC: matchUC,
	}
}

func (m *MatchHandler) HandleSaveMatch(w http.ResponseWriter, r *http.Request) {
	var req match.SaveMatchRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		httpresponse.WriteError(m.log, w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc+": "+err.Error())
		return
	}

	played, err := m.matchUC.SaveMatch(r.Context(), req)
	if err != nil {
		m.writeUseCaseError(w, "failed to save match", err)
		return
	}

	m.log.Infof("match %s saved for %s: %s", played.ID, played.Player, played.Result)
	httpresponse.WriteJSON(m.log, w, http.StatusCreated, played)
}

func (m *MatchHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := m.matchUC.GetStats(r.Context(), r.URL.Query().Get("player"))
	if err != nil {
		m.writeUseCaseError(w, "failed to load stats", err)
		return
	}
	httpresponse.WriteJSON(m.log, w, http.StatusOK, stats)
}

func (m *MatchHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpresponse.WriteError(m.log, w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := m.matchUC.GetLeaderboard(r.Context(), limit)
	if err != nil {
		m.writeUseCaseError(w, "failed to load leaderboard", err)
		return
	}
	if entries == nil {
		entries = []match.LeaderboardEntry{}
	}
	httpresponse.WriteJSON(m.log, w, http.StatusOK, entries)
}

func (m *MatchHandler) writeUseCaseError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, errs.ErrInvalidMatch) {
		httpresponse.WriteError(m.log, w, http.StatusBadRequest, err.Error())
		return
	}
	m.log.Errorf("%s: %v", msg, err)
	httpresponse.WriteError(m.log, w, http.StatusInternalServerError, msg)
}
