package mpesa

import (
	"context"

	"theracare/internal/domain"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *domain.MpesaTransaction) error
	GetByCheckoutRequestID(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.MpesaTransaction, error)
	UpdateStatus(ctx context.Context, checkoutID string, status domain.PaymentStatus, receipt *string) error
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// STKClient initiates a push-payment prompt on the payer's phone and
// returns the gateway's checkout request id.
type STKClient interface {
	STKPush(ctx context.Context, phone string, amount float64, reference string) (string, error)
}
