package session

import (
	"context"

	"theracare/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	GetAll(ctx context.Context, limit int) ([]domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
	CreateDiagnostic(ctx context.Context, d *domain.Diagnostic) error
	ListDiagnostics(ctx context.Context, sessionID int64) ([]domain.Diagnostic, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
