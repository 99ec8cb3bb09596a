package timeslot

import (
	"context"
	"time"

	"theracare/internal/domain"
)

type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListByTherapistAndDate(ctx context.Context, therapistID int64, date time.Time) ([]domain.TimeSlot, error)
	ListAvailableInRange(ctx context.Context, therapistID int64, from, to time.Time) ([]domain.TimeSlot, error)
	Update(ctx context.Context, s *domain.TimeSlot) error
	Delete(ctx context.Context, id int64) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BookingCounter reports active bookings for a slot so the service can
// refuse to delete a slot a booking still holds.
type BookingCounter interface {
	CountActiveForSlot(ctx context.Context, slotID int64, excludeBookingID int64) (int64, error)
}
