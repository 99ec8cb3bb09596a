package booking

import "theracare/internal/domain"

type CreateBookingRequest struct {
	UserID        int64  `json:"user_id" binding:"required"`
	TherapistID   int64  `json:"therapist_id" binding:"required"`
	SlotID        int64  `json:"slot_id" binding:"required"`
	BookingStatus string `json:"booking_status"`
}

// UpdateBookingRequest is a partial patch; nil fields are left untouched.
type UpdateBookingRequest struct {
	UserID        *int64  `json:"user_id"`
	TherapistID   *int64  `json:"therapist_id"`
	SlotID        *int64  `json:"slot_id"`
	BookingStatus *string `json:"booking_status"`
}

type AvailabilityResponse struct {
	SlotID           int64            `json:"slot_id"`
	Available        bool             `json:"available"`
	IsBooked         bool             `json:"is_booked"`
	HasActiveBooking bool             `json:"has_active_booking"`
	Slot             *domain.TimeSlot `json:"slot"`
}
