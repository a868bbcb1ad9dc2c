package service

import "errors"

// Callers match these with errors.Is; returned errors wrap them with detail.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
