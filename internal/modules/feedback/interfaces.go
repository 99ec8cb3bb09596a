package feedback

import (
	"context"

	"theracare/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	GetByID(ctx context.Context, id int64) (*domain.Feedback, error)
	ListBySession(ctx context.Context, sessionID int64) ([]domain.Feedback, error)
	Update(ctx context.Context, f *domain.Feedback) error
	Delete(ctx context.Context, id int64) error
}

type SessionReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
