package repository

import (
	"context"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	tx := r.db.WithContext(ctx).Create(m)
	return tx.Error
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var m domain.Message
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

// ListConversation returns both directions of a two-user exchange,
// oldest first, skipping deleted messages.
func (r *MessageRepository) ListConversation(ctx context.Context, userA, userB int64) ([]domain.Message, error) {
	var out []domain.Message
	tx := r.db.WithContext(ctx).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status <> ?",
			userA, userB, userB, userA, domain.MessageDeleted).
		Order("created_at").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	var out []domain.Message
	tx := r.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status <> ?", userID, userID, domain.MessageDeleted).
		Order("created_at DESC").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "status": domain.MessageRead})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkDeleted soft-deletes; the row stays for the other participant's history.
func (r *MessageRepository) MarkDeleted(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ?", id).
		Update("status", domain.MessageDeleted)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
