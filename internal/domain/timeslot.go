package domain

import "time"

// TimeSlot is a fixed therapist-owned interval. IsBooked must be true exactly
// when an active (non-cancelled) booking references the slot; only the slot
// repository's Claim/Release are allowed to flip it.
type TimeSlot struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TherapistID int64     `json:"therapist_id" gorm:"uniqueIndex:idx_slot_therapist_date_start" validate:"required"`
	Date        time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_slot_therapist_date_start" validate:"required"`
	StartTime   string    `json:"start_time" gorm:"uniqueIndex:idx_slot_therapist_date_start" validate:"required"`
	EndTime     string    `json:"end_time" validate:"required"`
	IsBooked    bool      `json:"is_booked"`

	Therapist *User `json:"therapist,omitempty" gorm:"foreignKey:TherapistID"`
}

func (TimeSlot) TableName() string { return "available_time_slots" }

// SlotAvailability is the diagnostic read for a slot: the flag, the slot
// itself, and whether an active booking row actually references it. The two
// can disagree only in the degraded state left by a failed compensation.
type SlotAvailability struct {
	Slot             *TimeSlot
	HasActiveBooking bool
}

func (a *SlotAvailability) Available() bool {
	return a.Slot != nil && !a.Slot.IsBooked && !a.HasActiveBooking
}
