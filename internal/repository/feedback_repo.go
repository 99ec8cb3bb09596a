package repository

import (
	"context"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	tx := r.db.WithContext(ctx).Create(f)
	return tx.Error
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	var f domain.Feedback
	tx := r.db.WithContext(ctx).Preload("Session").Preload("User").First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FeedbackRepository) ListBySession(ctx context.Context, sessionID int64) ([]domain.Feedback, error) {
	var out []domain.Feedback
	tx := r.db.WithContext(ctx).
		Preload("User").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, f *domain.Feedback) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Feedback{ID: f.ID}).
		Select("Rating", "Comments", "TherapistNotes").
		Updates(f)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Feedback{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
