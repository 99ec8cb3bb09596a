package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrValidation      = errors.New("validation failed")
)
