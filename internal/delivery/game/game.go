package game

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"infinite_ttt/internal/domain/game"
	"infinite_ttt/internal/httpresponse"
	gameuc "infinite_ttt/internal/usecase/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GameHandler serves live games against the engine, one session per socket.
type GameHandler struct {
	log      *zap.SugaredLogger
	maxMoves int
	ai       gameuc.MovePicker
	recorder gameuc.MatchRecorder

	activeGames   map[string]*gameuc.Session
	activeGamesMu sync.RWMutex
}

func NewGameHandler(log *zap.SugaredLogger, maxMoves int, ai gameuc.MovePicker, recorder gameuc.MatchRecorder) *GameHandler {
	return &GameHandler{
		log:         log,
		maxMoves:    maxMoves,
		ai:          ai,
		recorder:    recorder,
		activeGames: make(map[string]*gameuc.Session),
	}
}

func (g *GameHandler) ActiveGames() int {
	g.activeGamesMu.RLock()
	defer g.activeGamesMu.RUnlock()
	return len(g.activeGames)
}

// HandlePlay upgrades to a websocket. The first frame is the empty board; each
// {index} the client sends is answered with one SessionUpdate.
func (g *GameHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if len(player) > 64 {
		httpresponse.WriteError(g.log, w, http.StatusBadRequest, "player name is too long")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Errorf("upgrade error: %v", err)
		return
	}
	defer conn.Close()

	session := gameuc.NewSession(player, g.maxMoves, g.ai, g.recorder, g.log)
	g.activeGamesMu.Lock()
	g.activeGames[session.ID] = session
	g.activeGamesMu.Unlock()
	defer func() {
		g.activeGamesMu.Lock()
		delete(g.activeGames, session.ID)
		g.activeGamesMu.Unlock()
	}()

	g.log.Infof("session %s started for %q", session.ID, player)
	if err = conn.WriteJSON(session.Snapshot()); err != nil {
		g.log.Errorf("write error: %v", err)
		return
	}

	for {
		var move game.ClientMove
		if err = conn.ReadJSON(&move); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.Errorf("read error: %v", err)
			}
			return
		}

		update, err := session.PlayHuman(r.Context(), move.Index)
		if err != nil {
			g.log.Debugf("session %s: move %d rejected: %v", session.ID, move.Index, err)
			update.Error = err.Error()
		}
		if err = conn.WriteJSON(update); err != nil {
			g.log.Errorf("write error: %v", err)
			return
		}

		if session.Finished() {
			g.log.Infof("session %s finished: %s after %d plies", session.ID, update.Result, update.Plies)
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, update.Result))
			return
		}
	}
}
