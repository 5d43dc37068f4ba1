package match

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"infinite_ttt/internal/domain/match"
	matchuc "infinite_ttt/internal/usecase/match"
)

type stubStore struct {
	saved     []match.Match
	lastLimit int
	err       error
}

func (s *stubStore) CreateMatch(_ context.Context, played match.Match) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, played)
	return nil
}

func (s *stubStore) GetStatsByPlayer(_ context.Context, player string) (map[string]match.StatsSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[string]match.StatsSummary{match.ModeAI: {Wins: 2, Losses: 1}}, nil
}

func (s *stubStore) GetLeaderboard(_ context.Context, limit int) ([]match.LeaderboardEntry, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func newHandler(store *stubStore) *MatchHandler {
	return NewMatchHandler(zap.NewNop().Sugar(), matchuc.NewMatchUseCase(store, 10))
}

func TestHandleSaveMatch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		storeErr   error
		wantStatus int
	}{
		{"created", `{"player":"ana","mode":"ai","result":"win","moves":7}`, nil, http.StatusCreated},
		{"unknown result", `{"player":"ana","mode":"ai","result":"forfeit","moves":7}`, nil, http.StatusBadRequest},
		{"missing player", `{"mode":"pvp","result":"draw","moves":7}`, nil, http.StatusBadRequest},
		{"unknown field", `{"player":"ana","mode":"ai","result":"win","moves":7,"x":1}`, nil, http.StatusBadRequest},
		{"store down", `{"player":"ana","mode":"ai","result":"win","moves":7}`, errors.New("mongo down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{err: tt.storeErr}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", strings.NewReader(tt.body))
			newHandler(store).HandleSaveMatch(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusCreated {
				return
			}
			var played match.Match
			if err := json.Unmarshal(rec.Body.Bytes(), &played); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			if played.ID == "" || played.Player != "ana" || len(store.saved) != 1 {
				t.Fatalf("unexpected match %+v", played)
			}
		})
	}
}

func TestHandleStats(t *testing.T) {
	h := newHandler(&stubStore{})

	rec := httptest.NewRecorder()
	h.HandleStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats?player=ana", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats match.StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if stats.Summary[match.ModeAI].Wins != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if _, ok := stats.Summary[match.ModePvP]; !ok {
		t.Fatalf("pvp mode missing from %+v", stats)
	}

	rec = httptest.NewRecorder()
	h.HandleStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without player, got %d", rec.Code)
	}
}

func TestHandleLeaderboard(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantLimit  int
	}{
		{"default limit", "", http.StatusOK, 10},
		{"explicit limit", "?limit=3", http.StatusOK, 3},
		{"clamped", "?limit=1000", http.StatusOK, matchuc.MaxLeaderboardLimit},
		{"garbage", "?limit=ten", http.StatusBadRequest, 0},
		{"negative", "?limit=-1", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			rec := httptest.NewRecorder()
			newHandler(store).HandleLeaderboard(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard"+tt.query, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if store.lastLimit != tt.wantLimit {
				t.Fatalf("expected limit %d, got %d", tt.wantLimit, store.lastLimit)
			}
			if tt.wantStatus == http.StatusOK && strings.TrimSpace(rec.Body.String()) != "[]" {
				t.Fatalf("expected an empty list, got %s", rec.Body.String())
			}
		})
	}
}
