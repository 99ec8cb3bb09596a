package session

import (
	"context"
	"testing"

	"theracare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 5
	}
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) GetAll(ctx context.Context, limit int) ([]domain.Session, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) CreateDiagnostic(ctx context.Context, d *domain.Diagnostic) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockSessionRepository) ListDiagnostics(ctx context.Context, sessionID int64) ([]domain.Diagnostic, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Diagnostic), args.Error(1)
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

func TestCreateSession_Success(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingReader)
	service := NewService(sessions, bookings)

	bookings.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{ID: 3}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("GetByID", mock.Anything, int64(5)).Return(&domain.Session{ID: 5, BookingID: 3}, nil)

	sess, err := service.CreateSession(context.Background(), CreateSessionRequest{BookingID: 3})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), sess.ID)
	sessions.AssertExpectations(t)
}

func TestCreateSession_BookingMissing(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingReader)
	service := NewService(sessions, bookings)

	bookings.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateSession(context.Background(), CreateSessionRequest{BookingID: 3})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddDiagnostic_SessionMissing(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingReader)
	service := NewService(sessions, bookings)

	sessions.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.AddDiagnostic(context.Background(), 9, CreateDiagnosticRequest{Diagnosis: "GAD"})

	assert.ErrorIs(t, err, ErrSessionNotFound)
	sessions.AssertNotCalled(t, "CreateDiagnostic", mock.Anything, mock.Anything)
}

func TestAddDiagnostic_Success(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingReader)
	service := NewService(sessions, bookings)

	sessions.On("GetByID", mock.Anything, int64(9)).Return(&domain.Session{ID: 9}, nil)
	sessions.On("CreateDiagnostic", mock.Anything, mock.MatchedBy(func(d *domain.Diagnostic) bool {
		return d.SessionID == 9 && d.Diagnosis == "GAD"
	})).Return(nil)

	d, err := service.AddDiagnostic(context.Background(), 9, CreateDiagnosticRequest{Diagnosis: "GAD"})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), d.SessionID)
}

func TestDeleteSession_NotFound(t *testing.T) {
	sessions := new(MockSessionRepository)
	service := NewService(sessions, new(MockBookingReader))

	sessions.On("Delete", mock.Anything, int64(4)).Return(gorm.ErrRecordNotFound)

	err := service.DeleteSession(context.Background(), 4)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
