package messaging

import "theracare/internal/domain"

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	BookingID  *int64 `json:"booking_id"`
	Content    string `json:"content" binding:"required"`
}

// WSEvent is the wire format pushed to connected clients.
type WSEvent struct {
	Type    string          `json:"type"`
	Message *domain.Message `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"`
	Detail  string          `json:"detail,omitempty"`
}

func NewMessageEvent(m *domain.Message) WSEvent {
	return WSEvent{Type: "message", Message: m}
}

func NewErrorEvent(code, detail string) WSEvent {
	return WSEvent{Type: "error", Code: code, Detail: detail}
}
