package game

// MoveRequest is the wire form of a position handed to the engine.
type MoveRequest struct {
	Board  []string `json:"board"`
	XQueue []int    `json:"xQueue"`
	OQueue []int    `json:"oQueue"`
	// Side is the mark to move; empty means "O".
	Side string `json:"side,omitempty"`
}

type MoveResponse struct {
	Index int `json:"index"`
}
