package booking

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrNotTherapist       = errors.New("referenced user is not a therapist")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSlotNotFound       = errors.New("time slot not found")
	ErrSlotUnavailable    = errors.New("time slot is not available")
	ErrSlotConflict       = errors.New("time slot already has an active booking")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrBookingCancelled   = errors.New("booking is cancelled and can no longer change")
	ErrCompensationFailed = errors.New("slot release after failed write did not succeed")
)
