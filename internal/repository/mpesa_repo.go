package repository

import (
	"context"
	"time"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type MpesaRepository struct {
	db *gorm.DB
}

func NewMpesaRepository(db *gorm.DB) *MpesaRepository {
	return &MpesaRepository{db: db}
}

func (r *MpesaRepository) Create(ctx context.Context, t *domain.MpesaTransaction) error {
	tx := r.db.WithContext(ctx).Create(t)
	return mapDuplicateKey(tx.Error)
}

func (r *MpesaRepository) GetByCheckoutRequestID(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error) {
	var t domain.MpesaTransaction
	tx := r.db.WithContext(ctx).Where("checkout_request_id = ?", checkoutID).First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *MpesaRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.MpesaTransaction, error) {
	var out []domain.MpesaTransaction
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *MpesaRepository) UpdateStatus(ctx context.Context, checkoutID string, status domain.PaymentStatus, receipt *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if receipt != nil {
		updates["mpesa_receipt_number"] = receipt
	}
	tx := r.db.WithContext(ctx).Model(&domain.MpesaTransaction{}).
		Where("checkout_request_id = ?", checkoutID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
