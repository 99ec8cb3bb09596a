package messaging

import (
	"context"
	"errors"
	"strings"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	messages MessageRepository
	users    UserReader
	notifier Notifier
	loggerf  func(format string, args ...interface{})
}

func NewService(messages MessageRepository, users UserReader, notifier Notifier, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{messages: messages, users: users, notifier: notifier, loggerf: loggerf}
}

// SendMessage persists the message, then pushes it to both participants
// over any live connections. Delivery is best effort; the row is the
// source of truth.
func (s *Service) SendMessage(ctx context.Context, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	if senderID == req.ReceiverID {
		return nil, ErrSelfMessage
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	m := &domain.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		BookingID:  req.BookingID,
		Content:    req.Content,
		Status:     domain.MessageSent,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		event := NewMessageEvent(m)
		_ = s.notifier.SendToUser(senderID, event)
		if !s.notifier.SendToUser(req.ReceiverID, event) {
			s.loggerf("message %d queued for offline user %d", m.ID, req.ReceiverID)
		}
	}

	return m, nil
}

func (s *Service) GetConversation(ctx context.Context, userID, otherID int64) ([]domain.Message, error) {
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.messages.ListConversation(ctx, userID, otherID)
}

func (s *Service) ListMessages(ctx context.Context, userID int64) ([]domain.Message, error) {
	return s.messages.ListForUser(ctx, userID)
}

// MarkRead is allowed only for the receiver.
func (s *Service) MarkRead(ctx context.Context, userID, messageID int64) error {
	m, err := s.getOwned(ctx, messageID)
	if err != nil {
		return err
	}
	if m.ReceiverID != userID {
		return ErrNotParticipant
	}
	return s.markErr(s.messages.MarkRead(ctx, messageID))
}

// DeleteMessage soft-deletes; either participant may remove the message
// from their view.
func (s *Service) DeleteMessage(ctx context.Context, userID, messageID int64) error {
	m, err := s.getOwned(ctx, messageID)
	if err != nil {
		return err
	}
	if m.SenderID != userID && m.ReceiverID != userID {
		return ErrNotParticipant
	}
	return s.markErr(s.messages.MarkDeleted(ctx, messageID))
}

func (s *Service) getOwned(ctx context.Context, messageID int64) (*domain.Message, error) {
	m, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) markErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMessageNotFound
	}
	return err
}
