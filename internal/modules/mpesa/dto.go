package mpesa

type InitiatePaymentRequest struct {
	BookingID   int64   `json:"booking_id" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// CallbackPayload mirrors the Daraja STK callback envelope.
type CallbackPayload struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// ReceiptNumber pulls the MpesaReceiptNumber item out of the callback
// metadata, nil when the payment did not complete.
func (p *CallbackPayload) ReceiptNumber() *string {
	for _, item := range p.Body.StkCallback.CallbackMetadata.Item {
		if item.Name != "MpesaReceiptNumber" {
			continue
		}
		if s, ok := item.Value.(string); ok {
			return &s
		}
	}
	return nil
}
