package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"infinite_ttt/internal/domain/game"
	"infinite_ttt/internal/domain/match"
	"infinite_ttt/internal/domain/tictactoe"
	errs "infinite_ttt/internal/errors"
)

type MovePicker interface {
	BestMove(ctx context.Context, state tictactoe.GameState) (int, error)
}

type MatchRecorder interface {
	SaveMatch(ctx context.Context, req match.SaveMatchRequest) (match.Match, error)
}

const (
	HumanMark = tictactoe.X
	AIMark    = tictactoe.O
)

// Session is one human-vs-engine game. The human always plays X and moves
// first. Since the sliding window never fills the board, a game that reaches
// maxPlies without a line is scored as a draw.
type Session struct {
	ID string

	mu       sync.Mutex
	player   string
	state    tictactoe.GameState
	plies    int
	maxPlies int
	finished bool
	winner   tictactoe.Mark
	line     [3]int
	result   string

	ai       MovePicker
	recorder MatchRecorder
	log      *zap.SugaredLogger
}

func NewSession(player string, maxPlies int, ai MovePicker, recorder MatchRecorder, log *zap.SugaredLogger) *Session {
	return &Session{
		ID:       uuid.NewString(),
		player:   player,
		state:    tictactoe.NewGame(),
		maxPlies: maxPlies,
		ai:       ai,
		recorder: recorder,
		log:      log,
	}
}

func (s *Session) Snapshot() game.SessionUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(nil)
}

func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// PlayHuman applies the human move and, unless that ends the game, the
// engine's reply. An illegal move or a failed engine reply leaves the session
// unchanged.
func (s *Session) PlayHuman(ctx context.Context, idx int) (game.SessionUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return s.update(nil), errs.ErrGameOver
	}

	before, pliesBefore := s.state, s.plies
	human, err := s.place(idx)
	if err != nil {
		return s.update(nil), err
	}
	placed := []game.PlacedMove{human}
	if s.checkFinished(ctx) {
		return s.update(placed), nil
	}

	aiIdx, err := s.ai.BestMove(ctx, s.state)
	if err == nil {
		var reply game.PlacedMove
		if reply, err = s.place(aiIdx); err != nil {
			err = fmt.Errorf("cell %d: %w", aiIdx, err)
		} else {
			placed = append(placed, reply)
		}
	}
	if err != nil {
		s.state, s.plies = before, pliesBefore
		return s.update(nil), fmt.Errorf("engine reply: %w", err)
	}
	s.checkFinished(ctx)

	return s.update(placed), nil
}

func (s *Session) place(idx int) (game.PlacedMove, error) {
	mover := s.state.SideToMove
	evicted := s.state.NextEviction()
	next, err := s.state.Play(idx)
	if err != nil {
		return game.PlacedMove{}, err
	}
	s.state = next
	s.plies++
	return game.PlacedMove{Mark: string(mover), Index: idx, Evicted: evicted}, nil
}

func (s *Session) checkFinished(ctx context.Context) bool {
	if winner, line, ok := s.state.Board.Winner(); ok {
		s.winner, s.line = winner, line
		s.result = match.ResultLoss
		if winner == HumanMark {
			s.result = match.ResultWin
		}
	} else if s.maxPlies > 0 && s.plies >= s.maxPlies {
		s.result = match.ResultDraw
	} else {
		return false
	}

	s.finished = true
	s.record(ctx)
	return true
}

func (s *Session) record(ctx context.Context) {
	if s.recorder == nil || s.player == "" {
		s.log.Debugf("session %s finished (%s), not recorded", s.ID, s.result)
		return
	}
	played, err := s.recorder.SaveMatch(ctx, match.SaveMatchRequest{
		Player: s.player,
		Mode:   match.ModeAI,
		Result: s.result,
		Moves:  s.plies,
	})
	if err != nil {
		s.log.Errorf("session %s: failed to record match: %v", s.ID, err)
		return
	}
	s.log.Infof("session %s recorded as match %s (%s)", s.ID, played.ID, s.result)
}

func (s *Session) update(placed []game.PlacedMove) game.SessionUpdate {
	u := game.NewSessionUpdate(s.ID, s.state, s.plies)
	u.Moves = placed
	u.Finished = s.finished
	u.Result = s.result
	if s.winner != tictactoe.Empty {
		u.Winner = string(s.winner)
		line := s.line
		u.Line = line[:]
	}
	return u
}
