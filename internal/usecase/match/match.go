package match

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"infinite_ttt/internal/domain/match"
	errs "infinite_ttt/internal/errors"
)

const MaxLeaderboardLimit = 100

type MatchStore interface {
	CreateMatch(ctx context.Context, played match.Match) error
	GetStatsByPlayer(ctx context.Context, player string) (map[string]match.StatsSummary, error)
	GetLeaderboard(ctx context.Context, limit int) ([]match.LeaderboardEntry, error)
}

type MatchUseCase struct {
	store        MatchStore
	defaultLimit int
}

func NewMatchUseCase(store MatchStore, defaultLimit int) *MatchUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &MatchUseCase{store: store, defaultLimit: min(defaultLimit, MaxLeaderboardLimit)}
}

func (m *MatchUseCase) SaveMatch(ctx context.Context, req match.SaveMatchRequest) (match.Match, error) {
	player := strings.TrimSpace(req.Player)
	switch {
	case player == "":
		return match.Match{}, fmt.Errorf("%w: player is required", errs.ErrInvalidMatch)
	case !slices.Contains(match.Results, req.Result):
		return match.Match{}, fmt.Errorf("%w: unknown result %q", errs.ErrInvalidMatch, req.Result)
	case !slices.Contains(match.Modes, req.Mode):
		return match.Match{}, fmt.Errorf("%w: unknown mode %q", errs.ErrInvalidMatch, req.Mode)
	case req.Moves < 0:
		return match.Match{}, fmt.Errorf("%w: moves cannot be negative", errs.ErrInvalidMatch)
	}

	played := match.Match{
		ID:        uuid.NewString(),
		Player:    player,
		Mode:      req.Mode,
		Result:    req.Result,
		Moves:     req.Moves,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.CreateMatch(ctx, played); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", errs.ErrMatchNotSaved, err)
	}
	return played, nil
}

// GetStats reports every mode, including ones the player never played.
func (m *MatchUseCase) GetStats(ctx context.Context, player string) (match.StatsResponse, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return match.StatsResponse{}, fmt.Errorf("%w: player is required", errs.ErrInvalidMatch)
	}
	stored, err := m.store.GetStatsByPlayer(ctx, player)
	if err != nil {
		return match.StatsResponse{}, err
	}

	summary := make(map[string]match.StatsSummary, len(match.Modes))
	for _, mode := range match.Modes {
		summary[mode] = stored[mode]
	}
	return match.StatsResponse{Player: player, Summary: summary}, nil
}

func (m *MatchUseCase) GetLeaderboard(ctx context.Context, limit int) ([]match.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = m.defaultLimit
	}
	return m.store.GetLeaderboard(ctx, min(limit, MaxLeaderboardLimit))
}
