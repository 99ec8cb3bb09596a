package timeslot

import (
	"context"
	"errors"
	"time"

	"theracare/internal/domain"
	"theracare/internal/repository"

	"gorm.io/gorm"
)

// DefaultBlocks are the fixed two-hour windows seeded for a therapist day
// when the caller does not supply custom blocks.
var DefaultBlocks = []SlotBlock{
	{Start: "08:00", End: "10:00"},
	{Start: "10:00", End: "12:00"},
	{Start: "12:00", End: "14:00"},
	{Start: "14:00", End: "16:00"},
	{Start: "16:00", End: "18:00"},
}

type Service struct {
	slots    SlotRepository
	users    UserReader
	bookings BookingCounter
}

func NewService(slots SlotRepository, users UserReader, bookings BookingCounter) *Service {
	return &Service{slots: slots, users: users, bookings: bookings}
}

func (s *Service) requireTherapist(ctx context.Context, therapistID int64) error {
	u, err := s.users.GetByID(ctx, therapistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTherapistNotFound
		}
		return err
	}
	if !u.IsTherapist() {
		return ErrNotTherapist
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, ErrValidation
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func validBlock(b SlotBlock) bool {
	start, err := time.Parse("15:04", b.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", b.End)
	if err != nil {
		return false
	}
	return end.After(start)
}

// GenerateSlots seeds a therapist's day with unbooked slots. The unique
// (therapist, date, start) index turns a repeated call into ErrDuplicateSlot.
func (s *Service) GenerateSlots(ctx context.Context, req GenerateSlotsRequest) ([]domain.TimeSlot, error) {
	if err := s.requireTherapist(ctx, req.TherapistID); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	blocks := req.Blocks
	if len(blocks) == 0 {
		blocks = DefaultBlocks
	}

	slots := make([]domain.TimeSlot, 0, len(blocks))
	for _, b := range blocks {
		if !validBlock(b) {
			return nil, ErrValidation
		}
		slots = append(slots, domain.TimeSlot{
			TherapistID: req.TherapistID,
			Date:        date,
			StartTime:   b.Start,
			EndTime:     b.End,
		})
	}

	created, err := s.slots.CreateBatch(ctx, slots)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) GetSlot(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (s *Service) ListByTherapistAndDate(ctx context.Context, therapistID int64, dateRaw string) ([]domain.TimeSlot, error) {
	if err := s.requireTherapist(ctx, therapistID); err != nil {
		return nil, err
	}
	date, err := parseDate(dateRaw)
	if err != nil {
		return nil, err
	}
	return s.slots.ListByTherapistAndDate(ctx, therapistID, date)
}

func (s *Service) ListAvailableInRange(ctx context.Context, therapistID int64, fromRaw, toRaw string) ([]domain.TimeSlot, error) {
	if err := s.requireTherapist(ctx, therapistID); err != nil {
		return nil, err
	}
	from, err := parseDate(fromRaw)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toRaw)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrValidation
	}
	return s.slots.ListAvailableInRange(ctx, therapistID, from, to)
}

// UpdateSlot changes timing fields only; is_booked stays under the guard's
// exclusive control.
func (s *Service) UpdateSlot(ctx context.Context, id int64, req UpdateSlotRequest) (*domain.TimeSlot, error) {
	slot, err := s.GetSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		slot.Date = date
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if !validBlock(SlotBlock{Start: slot.StartTime, End: slot.EndTime}) {
		return nil, ErrValidation
	}

	if err := s.slots.Update(ctx, slot); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return slot, nil
}

// DeleteSlot refuses to remove a slot an active booking still references.
func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	slot, err := s.GetSlot(ctx, id)
	if err != nil {
		return err
	}

	active, err := s.bookings.CountActiveForSlot(ctx, id, 0)
	if err != nil {
		return err
	}
	if active > 0 || slot.IsBooked {
		return ErrSlotInUse
	}

	if err := s.slots.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	return nil
}
