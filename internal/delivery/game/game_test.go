package game

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"infinite_ttt/internal/domain/game"
	"infinite_ttt/internal/domain/match"
	"infinite_ttt/internal/domain/tictactoe"
)

type scriptedPicker struct {
	mu    sync.Mutex
	cells []int
}

func (p *scriptedPicker) BestMove(context.Context, tictactoe.GameState) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.cells[0]
	p.cells = p.cells[1:]
	return idx, nil
}

type recorder struct {
	mu    sync.Mutex
	saved []match.SaveMatchRequest
}

func (r *recorder) SaveMatch(_ context.Context, req match.SaveMatchRequest) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, req)
	return match.Match{ID: "m1"}, nil
}

func dial(t *testing.T, h *GameHandler, player string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.HandlePlay))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/play?player=" + player
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func play(t *testing.T, conn *websocket.Conn, idx int) game.SessionUpdate {
	t.Helper()
	if err := conn.WriteJSON(game.ClientMove{Index: idx}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var u game.SessionUpdate
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("read: %v", err)
	}
	return u
}

func TestHandlePlayFullGame(t *testing.T) {
	rec := &recorder{}
	h := NewGameHandler(zap.NewNop().Sugar(), 60, &scriptedPicker{cells: []int{3, 4}}, rec)
	conn := dial(t, h, "ana")

	var first game.SessionUpdate
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.SessionID == "" || len(first.Board) != 9 || first.Plies != 0 {
		t.Fatalf("unexpected opening frame %+v", first)
	}
	if h.ActiveGames() != 1 {
		t.Fatalf("expected one active game, got %d", h.ActiveGames())
	}

	u := play(t, conn, 0)
	if len(u.Moves) != 2 || u.Board[3] != "O" {
		t.Fatalf("expected engine reply at 3, got %+v", u)
	}
	play(t, conn, 1)

	u = play(t, conn, 2)
	if !u.Finished || u.Winner != "X" || u.Result != match.ResultWin {
		t.Fatalf("expected X to win, got %+v", u)
	}

	rec.mu.Lock()
	saved := rec.saved
	rec.mu.Unlock()
	if len(saved) != 1 || saved[0].Player != "ana" || saved[0].Result != match.ResultWin {
		t.Fatalf("unexpected recorded matches %+v", saved)
	}

	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected a normal close, got %v", err)
	}
}

func TestHandlePlayRejectsIllegalMove(t *testing.T) {
	h := NewGameHandler(zap.NewNop().Sugar(), 60, &scriptedPicker{cells: []int{4}}, nil)
	conn := dial(t, h, "")

	var first game.SessionUpdate
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	play(t, conn, 0)

	u := play(t, conn, 4)
	if u.Error == "" || u.Plies != 2 {
		t.Fatalf("expected rejection without progress, got %+v", u)
	}
}
