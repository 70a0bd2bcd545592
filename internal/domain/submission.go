package domain

import "time"

// Submission is one completed game as claimed by a client. Rows are
// append-only; IsValid is fixed at insert time and never revisited.
type Submission struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	Contact    string    `json:"contact,omitempty"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	DurationMs int64     `json:"durationMs"`
	WordsFound []string  `json:"wordsFound"`
	CreatedAt  time.Time `json:"createdAt"`
	IsValid    bool      `json:"isValid"`
}

// SubmissionResult is what the submitter gets back. Rank counts matching
// submissions only, so a non-match keeps the previous winner count.
type SubmissionResult struct {
	IsWinner bool `json:"isWinner"`
	Rank     int  `json:"rank"`
}
