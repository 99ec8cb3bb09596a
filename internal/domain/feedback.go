package domain

import "time"

type Feedback struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	SessionID      int64     `json:"session_id" validate:"required"`
	UserID         int64     `json:"user_id" validate:"required"`
	Rating         *int      `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comments       string    `json:"comments,omitempty" gorm:"type:text"`
	TherapistNotes string    `json:"therapist_notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`

	Session *Session `json:"session,omitempty" gorm:"foreignKey:SessionID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Feedback) TableName() string { return "feedback" }
