package booking

import (
	"context"
	"errors"
	"fmt"

	"theracare/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	users    UserReader
	slots    SlotGuard
	loggerf  func(format string, args ...interface{})
}

func NewService(bookings BookingRepository, users UserReader, slots SlotGuard, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings: bookings,
		users:    users,
		slots:    slots,
		loggerf:  loggerf,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// validateBooking runs every referential and business precondition before a
// write: patient exists, therapist exists with the therapist role, the slot
// exists, belongs to the therapist and is unclaimed, and no active booking
// (other than excludeBookingID) holds the slot. heldBySelf marks the slot as
// the booking's own current slot, whose is_booked flag is expected to be set.
// Read-only.
func (s *Service) validateBooking(ctx context.Context, userID, therapistID, slotID, excludeBookingID int64, heldBySelf bool) (*domain.TimeSlot, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	therapist, err := s.users.GetByID(ctx, therapistID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTherapistNotFound
		}
		return nil, err
	}
	if !therapist.IsTherapist() {
		return nil, ErrNotTherapist
	}

	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	if slot.TherapistID != therapistID {
		return nil, ErrSlotUnavailable
	}
	if slot.IsBooked && !heldBySelf {
		return nil, ErrSlotUnavailable
	}

	active, err := s.bookings.CountActiveForSlot(ctx, slotID, excludeBookingID)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrSlotConflict
	}

	return slot, nil
}

// CreateBooking validates, claims the slot, then inserts the booking row.
// The claim is the winner decision: a lost race surfaces as ErrSlotUnavailable
// without a row being written. If the insert fails after the claim, the slot
// is released again so it cannot stay booked with no booking behind it.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	status := domain.BookingPending
	if req.BookingStatus != "" {
		status = domain.BookingStatus(req.BookingStatus)
		if !status.Active() {
			return nil, ErrInvalidStatus
		}
	}

	if _, err := s.validateBooking(ctx, req.UserID, req.TherapistID, req.SlotID, 0, false); err != nil {
		return nil, err
	}

	claimed, err := s.slots.Claim(ctx, req.SlotID, req.TherapistID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrSlotUnavailable
	}

	b := &domain.Booking{
		UserID:        req.UserID,
		TherapistID:   req.TherapistID,
		SlotID:        req.SlotID,
		BookingStatus: status,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if rerr := s.slots.Release(ctx, req.SlotID); rerr != nil {
			s.loggerf("level=error msg=slot release after failed booking insert slot_id=%d err=%v", req.SlotID, rerr)
			return nil, fmt.Errorf("%w: %v (insert error: %v)", ErrCompensationFailed, rerr, err)
		}
		return nil, err
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// UpdateBooking applies a partial patch. Moving to another slot claims the new
// slot before releasing the old one; setting the status to Cancelled is the
// same as CancelBooking. A cancelled booking accepts no patch other than
// another cancel.
func (s *Service) UpdateBooking(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if req.BookingStatus != nil {
		status := domain.BookingStatus(*req.BookingStatus)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if status == domain.BookingCancelled {
			return s.CancelBooking(ctx, id)
		}
	}

	// The cancel already released the slot; a status or slot patch on a
	// cancelled booking would make it active again without any claim, leaving
	// the slot flag out of step with the booking row.
	if current.BookingStatus == domain.BookingCancelled {
		return nil, ErrBookingCancelled
	}

	updated := domain.Booking{
		ID:            current.ID,
		UserID:        current.UserID,
		TherapistID:   current.TherapistID,
		SlotID:        current.SlotID,
		BookingStatus: current.BookingStatus,
	}
	if req.UserID != nil {
		updated.UserID = *req.UserID
	}
	if req.TherapistID != nil {
		updated.TherapistID = *req.TherapistID
	}
	if req.SlotID != nil {
		updated.SlotID = *req.SlotID
	}
	if req.BookingStatus != nil {
		updated.BookingStatus = domain.BookingStatus(*req.BookingStatus)
	}

	movingSlot := updated.SlotID != current.SlotID
	if movingSlot {
		if _, err := s.validateBooking(ctx, updated.UserID, updated.TherapistID, updated.SlotID, id, false); err != nil {
			return nil, err
		}

		claimed, err := s.slots.Claim(ctx, updated.SlotID, updated.TherapistID)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrSlotUnavailable
		}

		if err := s.slots.Release(ctx, current.SlotID); err != nil {
			// undo the fresh claim, the booking still holds its old slot
			if rerr := s.slots.Release(ctx, updated.SlotID); rerr != nil {
				s.loggerf("level=error msg=release of newly claimed slot failed slot_id=%d err=%v", updated.SlotID, rerr)
				return nil, fmt.Errorf("%w: %v", ErrCompensationFailed, rerr)
			}
			return nil, err
		}
	} else if req.UserID != nil || req.TherapistID != nil {
		if _, err := s.validateBooking(ctx, updated.UserID, updated.TherapistID, updated.SlotID, id, true); err != nil {
			return nil, err
		}
	}

	if err := s.bookings.Update(ctx, &updated); err != nil {
		if movingSlot {
			// put the slots back the way they were
			rerr := s.slots.Release(ctx, updated.SlotID)
			_, cerr := s.slots.Claim(ctx, current.SlotID, current.TherapistID)
			if rerr != nil || cerr != nil {
				s.loggerf("level=error msg=slot rollback after failed booking update booking_id=%d release_err=%v claim_err=%v", id, rerr, cerr)
				return nil, fmt.Errorf("%w (update error: %v)", ErrCompensationFailed, err)
			}
		}
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return s.bookings.GetByID(ctx, id)
}

// CancelBooking marks the booking Cancelled and releases its slot. Cancelling
// an already-cancelled booking succeeds and re-releases the slot.
func (s *Service) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled); err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.slots.Release(ctx, b.SlotID); err != nil {
		s.loggerf("level=error msg=slot release on cancel failed booking_id=%d slot_id=%d err=%v", id, b.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrCompensationFailed, err)
	}

	return s.bookings.GetByID(ctx, id)
}

// DeleteBooking releases the slot first and only then removes the row. A
// failed release aborts the delete; a failed delete after the release leaves
// the slot free, which is recoverable, unlike a booked slot with no booking.
func (s *Service) DeleteBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.slots.Release(ctx, b.SlotID); err != nil {
		return nil, err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		s.loggerf("level=error msg=booking delete after slot release failed booking_id=%d slot_id=%d err=%v", id, b.SlotID, err)
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx, limit)
}

func (s *Service) ListBookingsByTherapist(ctx context.Context, therapistID int64) ([]domain.Booking, error) {
	return s.bookings.ListByTherapist(ctx, therapistID)
}

func (s *Service) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// CheckSlotAvailability is advisory: the authoritative answer is the claim at
// create time. It also reports the raw flag and whether an active booking row
// exists, so a flag/row mismatch can be spotted.
func (s *Service) CheckSlotAvailability(ctx context.Context, slotID int64) (*AvailabilityResponse, error) {
	avail, err := s.slots.Availability(ctx, slotID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	return &AvailabilityResponse{
		SlotID:           slotID,
		Available:        avail.Available(),
		IsBooked:         avail.Slot.IsBooked,
		HasActiveBooking: avail.HasActiveBooking,
		Slot:             avail.Slot,
	}, nil
}
