package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Active reports whether a booking in this status still holds its slot.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	UserID        int64         `json:"user_id" validate:"required"`
	TherapistID   int64         `json:"therapist_id" validate:"required"`
	SlotID        int64         `json:"slot_id" validate:"required"`
	BookingStatus BookingStatus `json:"booking_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Patient   *User     `json:"patient,omitempty" gorm:"foreignKey:UserID"`
	Therapist *User     `json:"therapist,omitempty" gorm:"foreignKey:TherapistID"`
	Slot      *TimeSlot `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
}
