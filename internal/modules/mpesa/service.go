package mpesa

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"theracare/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^254[17]\d{8}$`)

type Service struct {
	transactions TransactionRepository
	bookings     BookingReader
	client       STKClient
	loggerf      func(format string, args ...interface{})
}

func NewService(transactions TransactionRepository, bookings BookingReader, client STKClient, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{transactions: transactions, bookings: bookings, client: client, loggerf: loggerf}
}

// NormalizePhone rewrites local formats (07.., +254..) to the canonical
// 254XXXXXXXXX the gateway expects.
func NormalizePhone(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	p = strings.ReplaceAll(p, " ", "")
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") {
		p = "254" + p[1:]
	}
	if !phonePattern.MatchString(p) {
		return "", ErrInvalidPhone
	}
	return p, nil
}

// InitiatePayment fires an STK push for a booking and records the
// pending transaction under a fresh reference code.
func (s *Service) InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*domain.MpesaTransaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	phone, err := NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	reference := "THR-" + uuid.NewString()[:8]
	checkoutID, err := s.client.STKPush(ctx, phone, req.Amount, reference)
	if err != nil {
		return nil, err
	}

	t := &domain.MpesaTransaction{
		BookingID:         req.BookingID,
		PhoneNumber:       phone,
		Amount:            req.Amount,
		ReferenceCode:     reference,
		CheckoutRequestID: checkoutID,
		TransactionDate:   time.Now().UTC(),
		Status:            domain.PaymentPending,
	}
	if err := s.transactions.Create(ctx, t); err != nil {
		return nil, err
	}

	s.loggerf("stk push initiated: booking=%d checkout=%s", req.BookingID, checkoutID)
	return t, nil
}

// HandleCallback applies the gateway's verdict to the pending
// transaction. Unknown checkout ids are ignored so replayed callbacks
// stay harmless.
func (s *Service) HandleCallback(ctx context.Context, payload CallbackPayload) error {
	cb := payload.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return ErrTransactionNotFound
	}

	status := domain.PaymentCompleted
	var receipt *string
	if cb.ResultCode != 0 {
		status = domain.PaymentFailed
		s.loggerf("stk push failed: checkout=%s code=%d desc=%s", cb.CheckoutRequestID, cb.ResultCode, cb.ResultDesc)
	} else {
		receipt = payload.ReceiptNumber()
	}

	err := s.transactions.UpdateStatus(ctx, cb.CheckoutRequestID, status, receipt)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.loggerf("callback for unknown checkout %s dropped", cb.CheckoutRequestID)
		return nil
	}
	return err
}

func (s *Service) GetTransaction(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error) {
	t, err := s.transactions.GetByCheckoutRequestID(ctx, checkoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]domain.MpesaTransaction, error) {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return s.transactions.ListByBooking(ctx, bookingID)
}
