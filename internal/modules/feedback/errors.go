package feedback

import "errors"

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrValidation       = errors.New("validation failed")
)
