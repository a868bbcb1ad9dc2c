package models

// Contact is a legacy phone-book entry with no relation to the survey data.
type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
