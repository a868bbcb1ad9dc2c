package models

// Question is a yes/no prompt shown to participants.
type Question struct {
	ID             int64   `json:"id"`
	Prompt         string  `json:"prompt"`
	ImageURL       *string `json:"imageUrl"`
	AdditionalInfo *string `json:"additionalInfo"`
}
