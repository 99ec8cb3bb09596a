package booking

import (
	"context"

	"theracare/internal/domain"
)

// BookingRepository defines the persistence operations the service needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context, limit int) ([]domain.Booking, error)
	ListByTherapist(ctx context.Context, therapistID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	CountActiveForSlot(ctx context.Context, slotID int64, excludeBookingID int64) (int64, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// UserReader is the slice of the user repository used for validation
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SlotGuard owns the is_booked flag. Claim must be an atomic conditional
// write; its rows-affected result is the only winner decision.
type SlotGuard interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Claim(ctx context.Context, slotID, therapistID int64) (bool, error)
	Release(ctx context.Context, slotID int64) error
	Availability(ctx context.Context, slotID int64) (*domain.SlotAvailability, error)
}
