package game

import "infinite_ttt/internal/domain/tictactoe"

// ClientMove is what a player sends over the live session socket.
type ClientMove struct {
	Index int `json:"index"`
}

type PlacedMove struct {
	Mark    string `json:"mark"`
	Index   int    `json:"index"`
	Evicted int    `json:"evicted"`
}

type SessionUpdate struct {
	SessionID string       `json:"session_id"`
	Board     []string     `json:"board"`
	XQueue    []int        `json:"xQueue"`
	OQueue    []int        `json:"oQueue"`
	Moves     []PlacedMove `json:"moves"`
	Winner    string       `json:"winner,omitempty"`
	Line      []int        `json:"line,omitempty"`
	Finished  bool         `json:"finished"`
	Result    string       `json:"result,omitempty"`
	Plies     int          `json:"plies"`
	Error     string       `json:"error,omitempty"`
}

func NewSessionUpdate(sessionID string, s tictactoe.GameState, plies int) SessionUpdate {
	return SessionUpdate{
		SessionID: sessionID,
		Board:     s.Board.Strings(),
		XQueue:    s.XQueue.Slice(),
		OQueue:    s.OQueue.Slice(),
		Plies:     plies,
	}
}
