package timeslot

import "errors"

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrNotTherapist      = errors.New("referenced user is not a therapist")
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrDuplicateSlot     = errors.New("slot already exists for this therapist, date and start time")
	ErrSlotInUse         = errors.New("slot is referenced by an active booking")
	ErrValidation        = errors.New("validation error")
)
