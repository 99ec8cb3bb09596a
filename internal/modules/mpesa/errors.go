package mpesa

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)
