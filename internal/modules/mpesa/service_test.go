package mpesa

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"theracare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, t *domain.MpesaTransaction) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil {
		t.ID = 7
	}
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByCheckoutRequestID(ctx context.Context, checkoutID string) (*domain.MpesaTransaction, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MpesaTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.MpesaTransaction, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MpesaTransaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, checkoutID string, status domain.PaymentStatus, receipt *string) error {
	args := m.Called(ctx, checkoutID, status, receipt)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockSTKClient struct {
	mock.Mock
}

func (m *MockSTKClient) STKPush(ctx context.Context, phone string, amount float64, reference string) (string, error) {
	args := m.Called(ctx, phone, amount, reference)
	return args.String(0), args.Error(1)
}

func newTestService() (*Service, *MockTransactionRepository, *MockBookingReader, *MockSTKClient) {
	transactions := new(MockTransactionRepository)
	bookings := new(MockBookingReader)
	client := new(MockSTKClient)
	return NewService(transactions, bookings, client, nil), transactions, bookings, client
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0712345678":    "254712345678",
		"+254712345678": "254712345678",
		"254112345678":  "254112345678",
		"0712 345 678":  "254712345678",
	}
	for in, want := range cases {
		got, err := NormalizePhone(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"12345", "0812345678", "25471234567890", ""} {
		_, err := NormalizePhone(bad)
		assert.ErrorIs(t, err, ErrInvalidPhone, bad)
	}
}

func TestInitiatePayment_Success(t *testing.T) {
	service, transactions, bookings, client := newTestService()

	bookings.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{ID: 3}, nil)
	client.On("STKPush", mock.Anything, "254712345678", 1500.0, mock.Anything).Return("ws_CO_123", nil)
	transactions.On("Create", mock.Anything, mock.MatchedBy(func(tx *domain.MpesaTransaction) bool {
		return tx.BookingID == 3 && tx.Status == domain.PaymentPending && tx.CheckoutRequestID == "ws_CO_123"
	})).Return(nil)

	tx, err := service.InitiatePayment(context.Background(), InitiatePaymentRequest{
		BookingID: 3, PhoneNumber: "0712345678", Amount: 1500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ws_CO_123", tx.CheckoutRequestID)
	transactions.AssertExpectations(t)
}

func TestInitiatePayment_BookingMissing(t *testing.T) {
	service, _, bookings, client := newTestService()

	bookings.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.InitiatePayment(context.Background(), InitiatePaymentRequest{
		BookingID: 3, PhoneNumber: "0712345678", Amount: 1500,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	client.AssertNotCalled(t, "STKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiatePayment_GatewayDown(t *testing.T) {
	service, transactions, bookings, client := newTestService()

	bookings.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{ID: 3}, nil)
	client.On("STKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", ErrGatewayUnavailable)

	_, err := service.InitiatePayment(context.Background(), InitiatePaymentRequest{
		BookingID: 3, PhoneNumber: "0712345678", Amount: 1500,
	})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func callbackJSON(t *testing.T, checkoutID string, resultCode int, receipt string) CallbackPayload {
	t.Helper()
	meta := ""
	if receipt != "" {
		meta = fmt.Sprintf(`,"CallbackMetadata":{"Item":[{"Name":"MpesaReceiptNumber","Value":"%s"}]}`, receipt)
	}
	raw := fmt.Sprintf(`{"Body":{"stkCallback":{"CheckoutRequestID":"%s","ResultCode":%d,"ResultDesc":"d"%s}}}`,
		checkoutID, resultCode, meta)

	var p CallbackPayload
	assert.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestHandleCallback_Completed(t *testing.T) {
	service, transactions, _, _ := newTestService()

	receipt := "QK12XYZ"
	transactions.On("UpdateStatus", mock.Anything, "ws_CO_123", domain.PaymentCompleted, &receipt).Return(nil)

	err := service.HandleCallback(context.Background(), callbackJSON(t, "ws_CO_123", 0, "QK12XYZ"))

	assert.NoError(t, err)
	transactions.AssertExpectations(t)
}

func TestHandleCallback_Failed(t *testing.T) {
	service, transactions, _, _ := newTestService()

	transactions.On("UpdateStatus", mock.Anything, "ws_CO_123", domain.PaymentFailed, (*string)(nil)).Return(nil)

	err := service.HandleCallback(context.Background(), callbackJSON(t, "ws_CO_123", 1, ""))

	assert.NoError(t, err)
	transactions.AssertExpectations(t)
}

func TestHandleCallback_UnknownCheckoutIgnored(t *testing.T) {
	service, transactions, _, _ := newTestService()

	transactions.On("UpdateStatus", mock.Anything, "ws_CO_999", domain.PaymentCompleted, mock.Anything).
		Return(gorm.ErrRecordNotFound)

	err := service.HandleCallback(context.Background(), callbackJSON(t, "ws_CO_999", 0, "QK12XYZ"))

	assert.NoError(t, err)
}
