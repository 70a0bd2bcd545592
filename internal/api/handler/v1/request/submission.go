package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SubmitRequest carries one claimed play-through. DurationMs and WordsFound
// are pointers so that an absent field is told apart from a zero one: a
// duration of 0 is accepted, a missing duration is not, and wordsFound must
// be present even when empty.
type SubmitRequest struct {
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Contact    string    `json:"contact"`
	DurationMs *int64    `json:"durationMs"`
	WordsFound *[]string `json:"wordsFound"`
}

func (req *SubmitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.UserName, validation.Length(0, 100)),
		validation.Field(&req.Contact, validation.Length(0, 200)),
		validation.Field(&req.DurationMs, validation.NotNil, validation.Min(int64(0))),
		validation.Field(&req.WordsFound, validation.NotNil),
	)
}
