package repository

import (
	"context"
	"time"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

// TimeSlotRepository is the only component allowed to flip is_booked.
// The winning-writer decision for a slot is Claim's conditional update;
// nothing else may set the flag, and no read-then-write sequence is
// a substitute for it.
type TimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) CreateBatch(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error) {
	if len(slots) == 0 {
		return slots, nil
	}
	tx := r.db.WithContext(ctx).Create(&slots)
	if tx.Error != nil {
		return nil, mapDuplicateKey(tx.Error)
	}
	return slots, nil
}

func (r *TimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	tx := r.db.WithContext(ctx).Preload("Therapist").First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *TimeSlotRepository) ListByTherapistAndDate(ctx context.Context, therapistID int64, date time.Time) ([]domain.TimeSlot, error) {
	var slots []domain.TimeSlot
	tx := r.db.WithContext(ctx).
		Where("therapist_id = ? AND date = ?", therapistID, date).
		Order("start_time").
		Find(&slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

func (r *TimeSlotRepository) ListAvailableInRange(ctx context.Context, therapistID int64, from, to time.Time) ([]domain.TimeSlot, error) {
	var slots []domain.TimeSlot
	tx := r.db.WithContext(ctx).
		Where("therapist_id = ? AND date >= ? AND date <= ? AND is_booked = ?", therapistID, from, to, false).
		Order("date, start_time").
		Find(&slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

func (r *TimeSlotRepository) Update(ctx context.Context, s *domain.TimeSlot) error {
	tx := r.db.WithContext(ctx).Save(s)
	return mapDuplicateKey(tx.Error)
}

func (r *TimeSlotRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.TimeSlot{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Claim atomically transitions the slot from unbooked to booked. The WHERE
// clause carries the old flag value, so under concurrent claims for the same
// slot exactly one update affects a row; everyone else gets false.
func (r *TimeSlotRepository) Claim(ctx context.Context, slotID, therapistID int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.TimeSlot{}).
		Where("id = ? AND therapist_id = ? AND is_booked = ?", slotID, therapistID, false).
		Update("is_booked", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// Release unconditionally marks the slot unbooked. Safe to call twice.
func (r *TimeSlotRepository) Release(ctx context.Context, slotID int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.TimeSlot{}).
		Where("id = ?", slotID).
		Update("is_booked", false)
	return tx.Error
}

// Availability returns the slot together with whether an active booking row
// references it, so callers can detect a flag that disagrees with the
// bookings table.
func (r *TimeSlotRepository) Availability(ctx context.Context, slotID int64) (*domain.SlotAvailability, error) {
	var s domain.TimeSlot
	tx := r.db.WithContext(ctx).Preload("Therapist").First(&s, slotID)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var cnt int64
	tx = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("slot_id = ? AND booking_status <> ?", slotID, domain.BookingCancelled).
		Count(&cnt)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return &domain.SlotAvailability{Slot: &s, HasActiveBooking: cnt > 0}, nil
}
