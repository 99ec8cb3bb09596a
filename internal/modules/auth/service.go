package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"theracare/internal/domain"
	"theracare/internal/pkg/validator"
	"theracare/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users   UserRepository
	tokens  TokenIssuer
	loggerf func(format string, args ...interface{})
}

func NewService(users UserRepository, tokens TokenIssuer, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{users: users, tokens: tokens, loggerf: loggerf}
}

// Register creates an account and returns a signed token for it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}

	// Admin accounts come from the seeder, never from the public endpoint.
	role := domain.UserRole(req.Role)
	if role != domain.RoleTherapist && role != domain.RolePatient {
		return nil, ErrInvalidRole
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		FullName:        req.FullName,
		Email:           email,
		PasswordHash:    string(hash),
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
		Role:            role,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
	}

	if err := s.users.Create(ctx, u); err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the unique index breaks the tie.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	s.loggerf("user registered: id=%d role=%s", u.ID, u.Role)
	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.ContactPhone != nil {
		u.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.Specialization != nil {
		u.Specialization = *req.Specialization
	}
	if req.ExperienceYears != nil {
		u.ExperienceYears = *req.ExperienceYears
	}
	if req.ProfilePicture != nil {
		u.ProfilePicture = *req.ProfilePicture
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListTherapists(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleTherapist)
}
