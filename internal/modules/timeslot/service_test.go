package timeslot

import (
	"context"
	"testing"
	"time"

	"theracare/internal/domain"
	"theracare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) CreateBatch(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, slots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *MockSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeSlot), args.Error(1)
}

func (m *MockSlotRepository) ListByTherapistAndDate(ctx context.Context, therapistID int64, date time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, therapistID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *MockSlotRepository) ListAvailableInRange(ctx context.Context, therapistID int64, from, to time.Time) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, therapistID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *MockSlotRepository) Update(ctx context.Context, s *domain.TimeSlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSlotRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountActiveForSlot(ctx context.Context, slotID int64, excludeBookingID int64) (int64, error) {
	args := m.Called(ctx, slotID, excludeBookingID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *MockSlotRepository, *MockUserReader, *MockBookingCounter) {
	slots := new(MockSlotRepository)
	users := new(MockUserReader)
	bookings := new(MockBookingCounter)
	return NewService(slots, users, bookings), slots, users, bookings
}

func TestGenerateSlots_DefaultBlocks(t *testing.T) {
	service, slots, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleTherapist}, nil)
	slots.On("CreateBatch", mock.Anything, mock.MatchedBy(func(s []domain.TimeSlot) bool {
		return len(s) == len(DefaultBlocks) && s[0].StartTime == "08:00" && !s[0].IsBooked
	})).Return([]domain.TimeSlot{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}, nil)

	created, err := service.GenerateSlots(context.Background(), GenerateSlotsRequest{
		TherapistID: 2, Date: "2026-03-02",
	})

	assert.NoError(t, err)
	assert.Len(t, created, 5)
	slots.AssertExpectations(t)
}

func TestGenerateSlots_Duplicate(t *testing.T) {
	service, slots, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleTherapist}, nil)
	slots.On("CreateBatch", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateKey)

	_, err := service.GenerateSlots(context.Background(), GenerateSlotsRequest{
		TherapistID: 2, Date: "2026-03-02",
	})

	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestGenerateSlots_NotATherapist(t *testing.T) {
	service, slots, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RolePatient}, nil)

	_, err := service.GenerateSlots(context.Background(), GenerateSlotsRequest{
		TherapistID: 2, Date: "2026-03-02",
	})

	assert.ErrorIs(t, err, ErrNotTherapist)
	slots.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestGenerateSlots_BadDate(t *testing.T) {
	service, _, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleTherapist}, nil)

	_, err := service.GenerateSlots(context.Background(), GenerateSlotsRequest{
		TherapistID: 2, Date: "02-03-2026",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGenerateSlots_RejectsInvertedBlock(t *testing.T) {
	service, _, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleTherapist}, nil)

	_, err := service.GenerateSlots(context.Background(), GenerateSlotsRequest{
		TherapistID: 2, Date: "2026-03-02",
		Blocks:      []SlotBlock{{Start: "12:00", End: "10:00"}},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteSlot_InUse(t *testing.T) {
	service, slots, _, bookings := newTestService()

	slots.On("GetByID", mock.Anything, int64(10)).Return(&domain.TimeSlot{ID: 10, IsBooked: true}, nil)
	bookings.On("CountActiveForSlot", mock.Anything, int64(10), int64(0)).Return(int64(1), nil)

	err := service.DeleteSlot(context.Background(), 10)

	assert.ErrorIs(t, err, ErrSlotInUse)
	slots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteSlot_Free(t *testing.T) {
	service, slots, _, bookings := newTestService()

	slots.On("GetByID", mock.Anything, int64(10)).Return(&domain.TimeSlot{ID: 10}, nil)
	bookings.On("CountActiveForSlot", mock.Anything, int64(10), int64(0)).Return(int64(0), nil)
	slots.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := service.DeleteSlot(context.Background(), 10)

	assert.NoError(t, err)
	slots.AssertExpectations(t)
}

func TestUpdateSlot_NotFound(t *testing.T) {
	service, slots, _, _ := newTestService()

	slots.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.UpdateSlot(context.Background(), 10, UpdateSlotRequest{})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUpdateSlot_RejectsInvertedTimes(t *testing.T) {
	service, slots, _, _ := newTestService()

	slots.On("GetByID", mock.Anything, int64(10)).Return(&domain.TimeSlot{
		ID: 10, StartTime: "10:00", EndTime: "12:00",
	}, nil)

	bad := "08:00"
	_, err := service.UpdateSlot(context.Background(), 10, UpdateSlotRequest{EndTime: &bad})

	assert.ErrorIs(t, err, ErrValidation)
	slots.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
