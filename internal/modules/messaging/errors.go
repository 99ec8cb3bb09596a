package messaging

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSelfMessage     = errors.New("cannot message yourself")
	ErrNotParticipant  = errors.New("not a participant of this message")
	ErrEmptyContent    = errors.New("message content is empty")
)
