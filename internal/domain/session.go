package domain

import "time"

type Session struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	BookingID    int64     `json:"booking_id" validate:"required"`
	SessionNotes string    `json:"session_notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

type Diagnostic struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	SessionID       int64     `json:"session_id" validate:"required"`
	Diagnosis       string    `json:"diagnosis" validate:"required"`
	Recommendations string    `json:"recommendations,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`

	Session *Session `json:"session,omitempty" gorm:"foreignKey:SessionID"`
}
