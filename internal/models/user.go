package models

// User is a survey participant identified by an opaque client token.
// All profile attributes are optional and are replaced wholesale on save.
type User struct {
	UserID      string  `json:"userId"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD, stored as text
}
