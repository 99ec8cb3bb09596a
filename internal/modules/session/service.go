package session

import (
	"context"
	"errors"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	sessions SessionRepository
	bookings BookingReader
}

func NewService(sessions SessionRepository, bookings BookingReader) *Service {
	return &Service{sessions: sessions, bookings: bookings}
}

func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest) (*domain.Session, error) {
	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	sess := &domain.Session{
		BookingID:    req.BookingID,
		SessionNotes: req.SessionNotes,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return s.GetSession(ctx, sess.ID)
}

func (s *Service) GetSession(ctx context.Context, id int64) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) ListSessions(ctx context.Context, limit int) ([]domain.Session, error) {
	return s.sessions.GetAll(ctx, limit)
}

func (s *Service) UpdateSession(ctx context.Context, id int64, req UpdateSessionRequest) (*domain.Session, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SessionNotes != nil {
		sess.SessionNotes = *req.SessionNotes
	}

	if err := s.sessions.Update(ctx, sess); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s.GetSession(ctx, id)
}

func (s *Service) DeleteSession(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// AddDiagnostic attaches a diagnosis record to an existing session.
func (s *Service) AddDiagnostic(ctx context.Context, sessionID int64, req CreateDiagnosticRequest) (*domain.Diagnostic, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	d := &domain.Diagnostic{
		SessionID:       sessionID,
		Diagnosis:       req.Diagnosis,
		Recommendations: req.Recommendations,
	}
	if err := s.sessions.CreateDiagnostic(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDiagnostics(ctx context.Context, sessionID int64) ([]domain.Diagnostic, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.sessions.ListDiagnostics(ctx, sessionID)
}
