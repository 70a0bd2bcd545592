package domain

import "time"

// Event is a configured instance of the word-hunt game: the target words,
// the grid they are hidden in, the winner quota and an optional time window.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	GridSize  int       `json:"gridSize"`
	WinnerCap int       `json:"winnerCap"`
	StartAt   *int64    `json:"startAt"` // unix milliseconds
	EndAt     *int64    `json:"endAt"`   // unix milliseconds
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Started reports whether the event's start bound allows play at t.
// An unset bound is a no-op.
func (e Event) Started(t time.Time) bool {
	return e.StartAt == nil || t.UnixMilli() >= *e.StartAt
}

// Ended reports whether the event's end bound has passed at t.
func (e Event) Ended(t time.Time) bool {
	return e.EndAt != nil && t.UnixMilli() > *e.EndAt
}
