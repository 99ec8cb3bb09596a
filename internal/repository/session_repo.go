package repository

import (
	"context"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	tx := r.db.WithContext(ctx).Create(s)
	return tx.Error
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	var s domain.Session
	tx := r.db.WithContext(ctx).Preload("Booking").First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *SessionRepository) GetAll(ctx context.Context, limit int) ([]domain.Session, error) {
	var sessions []domain.Session
	q := r.db.WithContext(ctx).Preload("Booking").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	tx := q.Find(&sessions)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Session{ID: s.ID}).
		Select("BookingID", "SessionNotes").
		Updates(s)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Session{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SessionRepository) CreateDiagnostic(ctx context.Context, d *domain.Diagnostic) error {
	tx := r.db.WithContext(ctx).Create(d)
	return tx.Error
}

func (r *SessionRepository) ListDiagnostics(ctx context.Context, sessionID int64) ([]domain.Diagnostic, error) {
	var out []domain.Diagnostic
	tx := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
