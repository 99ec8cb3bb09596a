package feedback

import (
	"context"
	"errors"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	feedback FeedbackRepository
	sessions SessionReader
	users    UserReader
}

func NewService(feedback FeedbackRepository, sessions SessionReader, users UserReader) *Service {
	return &Service{feedback: feedback, sessions: sessions, users: users}
}

func (s *Service) CreateFeedback(ctx context.Context, req CreateFeedbackRequest) (*domain.Feedback, error) {
	if _, err := s.sessions.GetByID(ctx, req.SessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	f := &domain.Feedback{
		SessionID:      req.SessionID,
		UserID:         req.UserID,
		Rating:         req.Rating,
		Comments:       req.Comments,
		TherapistNotes: req.TherapistNotes,
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.GetFeedback(ctx, f.ID)
}

func (s *Service) GetFeedback(ctx context.Context, id int64) (*domain.Feedback, error) {
	f, err := s.feedback.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) ListBySession(ctx context.Context, sessionID int64) ([]domain.Feedback, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s.feedback.ListBySession(ctx, sessionID)
}

func (s *Service) UpdateFeedback(ctx context.Context, id int64, req UpdateFeedbackRequest) (*domain.Feedback, error) {
	f, err := s.GetFeedback(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		f.Rating = req.Rating
	}
	if req.Comments != nil {
		f.Comments = *req.Comments
	}
	if req.TherapistNotes != nil {
		f.TherapistNotes = *req.TherapistNotes
	}

	if err := s.feedback.Update(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return s.GetFeedback(ctx, id)
}

func (s *Service) DeleteFeedback(ctx context.Context, id int64) error {
	if err := s.feedback.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return nil
}
