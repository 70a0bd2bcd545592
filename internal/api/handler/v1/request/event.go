package request

import (
	"fmt"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Grid words must be placeable letters, including the Turkish alphabet, so
// anything outside Unicode letter classes is rejected up front.
var wordPattern = regexp2.MustCompile(`^\p{L}+$`, regexp2.None)

type UpsertEventRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Words     []string `json:"words"`
	GridSize  int      `json:"gridSize"`
	WinnerCap int      `json:"winnerCap"`
	StartAt   *int64   `json:"startAt"`
	EndAt     *int64   `json:"endAt"`
	IsActive  *bool    `json:"isActive"`
}

func (req *UpsertEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Words, validation.Required, validation.Length(1, 0), validation.By(validateWords)),
		validation.Field(&req.GridSize, validation.Min(0), validation.Max(64)),
		validation.Field(&req.WinnerCap, validation.Min(0)),
	)
}

// ApplyDefaults fills the fields the original backend defaulted when they
// are omitted: a 12x12 grid, a cap of 100 winners, active on.
func (req *UpsertEventRequest) ApplyDefaults() {
	if req.GridSize == 0 {
		req.GridSize = 12
	}
	if req.WinnerCap == 0 {
		req.WinnerCap = 100
	}
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
}

func validateWords(value interface{}) error {
	words, ok := value.([]string)
	if !ok {
		return fmt.Errorf("invalid word list")
	}

	for _, word := range words {
		matched, err := wordPattern.MatchString(word)
		if err != nil {
			return fmt.Errorf("wordPattern.MatchString -> %w", err)
		}
		if !matched {
			return fmt.Errorf("word %q contains non-letter characters", word)
		}
	}

	return nil
}
