package match

import "time"

const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultDraw = "draw"

	ModeAI  = "ai"
	ModePvP = "pvp"
)

var (
	Results = []string{ResultWin, ResultLoss, ResultDraw}
	Modes   = []string{ModeAI, ModePvP}
)

// Match is a finished game; Result is from Player's point of view.
type Match struct {
	ID        string    `json:"id" bson:"_id"`
	Player    string    `json:"player" bson:"player"`
	Mode      string    `json:"mode" bson:"mode"`
	Result    string    `json:"result" bson:"result"`
	Moves     int       `json:"moves" bson:"moves"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type SaveMatchRequest struct {
	Player string `json:"player"`
	Mode   string `json:"mode"`
	Result string `json:"result"`
	Moves  int    `json:"moves"`
}

type StatsSummary struct {
	Wins   int `json:"wins" bson:"wins"`
	Losses int `json:"losses" bson:"losses"`
	Draws  int `json:"draws" bson:"draws"`
}

type StatsResponse struct {
	Player  string                  `json:"player"`
	Summary map[string]StatsSummary `json:"summary"`
}

type LeaderboardEntry struct {
	Player string `json:"player" bson:"_id"`
	Wins   int    `json:"wins" bson:"wins"`
	Losses int    `json:"losses" bson:"losses"`
	Draws  int    `json:"draws" bson:"draws"`
	Games  int    `json:"games" bson:"games"`
}
