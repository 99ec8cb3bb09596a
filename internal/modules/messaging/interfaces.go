package messaging

import (
	"context"

	"theracare/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	ListConversation(ctx context.Context, userA, userB int64) ([]domain.Message, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkDeleted(ctx context.Context, id int64) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier pushes a realtime event to connected participants.
type Notifier interface {
	SendToUser(userID int64, message interface{}) bool
}
