package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type MpesaTransaction struct {
	ID                 int64         `json:"id" gorm:"primaryKey"`
	BookingID          int64         `json:"booking_id" validate:"required"`
	PhoneNumber        string        `json:"phone_number" validate:"required"`
	Amount             float64       `json:"amount" validate:"required,gt=0"`
	ReferenceCode      string        `json:"reference_code" gorm:"uniqueIndex"`
	CheckoutRequestID  string        `json:"checkout_request_id,omitempty"`
	MpesaReceiptNumber *string       `json:"mpesa_receipt_number,omitempty"`
	TransactionDate    time.Time     `json:"transaction_date"`
	Status             PaymentStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}
