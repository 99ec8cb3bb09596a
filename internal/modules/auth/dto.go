package auth

import "theracare/internal/domain"

type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ContactPhone    string `json:"contact_phone"`
	Address         string `json:"address"`
	Role            string `json:"role" validate:"required,oneof=therapist patient"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName        *string `json:"full_name"`
	ContactPhone    *string `json:"contact_phone"`
	Address         *string `json:"address"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years"`
	ProfilePicture  *string `json:"profile_picture"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
