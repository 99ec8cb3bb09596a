package domain

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleTherapist UserRole = "therapist"
	RolePatient   UserRole = "patient"
)

type User struct {
	ID              int64    `json:"id" gorm:"primaryKey"`
	FullName        string   `json:"full_name" validate:"required"`
	Email           string   `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash    string   `json:"-"`
	ContactPhone    string   `json:"contact_phone,omitempty"`
	Address         string   `json:"address,omitempty" gorm:"type:text"`
	Role            UserRole `json:"role"`
	Specialization  string   `json:"specialization,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	ProfilePicture  string   `json:"profile_picture,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsTherapist() bool { return u.Role == RoleTherapist }
