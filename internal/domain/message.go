package domain

import "time"

type MessageStatus string

const (
	MessageSent    MessageStatus = "Sent"
	MessageRead    MessageStatus = "Read"
	MessageDeleted MessageStatus = "Deleted"
)

type Message struct {
	ID         int64         `json:"id" gorm:"primaryKey"`
	SenderID   int64         `json:"sender_id" validate:"required"`
	ReceiverID int64         `json:"receiver_id" validate:"required"`
	BookingID  *int64        `json:"booking_id,omitempty"`
	Content    string        `json:"content" gorm:"type:text" validate:"required"`
	Status     MessageStatus `json:"status"`
	IsRead     bool          `json:"is_read"`
	CreatedAt  time.Time     `json:"created_at"`

	Sender   *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver *User `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
}
