package repository

import (
	"context"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Therapist").
		Preload("Slot")
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx := r.db.WithContext(ctx).Create(b)
	return tx.Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.preload(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) GetAll(ctx context.Context, limit int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	q := r.preload(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	tx := q.Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

func (r *BookingRepository) ListByTherapist(ctx context.Context, therapistID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.preload(ctx).
		Where("therapist_id = ?", therapistID).
		Order("created_at DESC").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.preload(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

// CountActiveForSlot counts non-cancelled bookings holding the slot,
// optionally ignoring one booking id (the one being updated).
func (r *BookingRepository) CountActiveForSlot(ctx context.Context, slotID int64, excludeBookingID int64) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("slot_id = ? AND booking_status <> ?", slotID, domain.BookingCancelled)
	if excludeBookingID > 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}
	tx := q.Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{ID: b.ID}).
		Select("UserID", "TherapistID", "SlotID", "BookingStatus").
		Updates(b)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("booking_status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Booking{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
