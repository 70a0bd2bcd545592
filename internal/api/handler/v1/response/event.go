package response

// ConfigResponse is the public view of an event, stripped of the active
// flag and bookkeeping timestamps.
type ConfigResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Words     []string `json:"words"`
	GridSize  int      `json:"gridSize"`
	WinnerCap int      `json:"winnerCap"`
	StartAt   *int64   `json:"startAt"`
	EndAt     *int64   `json:"endAt"`
}

type GridResponse struct {
	Grid [][]string `json:"grid"`
}

type SubmitResponse struct {
	OK       bool `json:"ok"`
	IsWinner bool `json:"isWinner"`
	Rank     int  `json:"rank"`
}

type UpsertEventResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type HealthcheckResponse struct {
	OK bool `json:"ok"`
}
