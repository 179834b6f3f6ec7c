package service

import (
	"fmt"
	"time"

	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
	"campuspark/internal/repository"
)

// Notifier delivers booking lifecycle notifications. Implementations
// must not block the caller; delivery failures are theirs to log.
type Notifier interface {
	BookingConfirmed(user db.User, booking db.Booking, spot db.ParkingSpot, slot db.TimeSlot)
	BookingCancelled(user db.User, booking db.Booking, spot db.ParkingSpot, slot db.TimeSlot)
}

type BookingService struct {
	Repo     repository.BookingRepository
	Spots    repository.SpotRepository
	Slots    repository.TimeSlotRepository
	Users    repository.UserRepository
	notifier Notifier
}

func NewBookingService(repo repository.BookingRepository, spots repository.SpotRepository,
	slots repository.TimeSlotRepository, users repository.UserRepository, notifier Notifier) *BookingService {
	return &BookingService{
		Repo:     repo,
		Spots:    spots,
		Slots:    slots,
		Users:    users,
		notifier: notifier,
	}
}

// CandidateSpots returns the spots a user can pick in the first wizard
// step: available spots matching the chosen vehicle type.
func (s *BookingService) CandidateSpots(vehicleType db.VehicleType) ([]db.ParkingSpot, error) {
	if !vehicleType.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", apperrors.ErrInvalidInput, vehicleType)
	}
	var out []db.ParkingSpot
	for _, spot := range s.Spots.List() {
		if spot.Status == db.SpotAvailable && spot.Type == vehicleType {
			out = append(out, spot)
		}
	}
	return out, nil
}

// CandidateTimeSlots returns the second wizard step's options: available
// slots on the chosen spot.
func (s *BookingService) CandidateTimeSlots(spotID string) ([]db.TimeSlot, error) {
	if spotID == "" {
		return nil, fmt.Errorf("%w: spot_id is required", apperrors.ErrInvalidInput)
	}
	return s.Slots.ListBySpot(spotID, true), nil
}

// Confirm appends an active booking for the chosen spot and slot. The
// slot is not marked unavailable and the spot is not marked occupied;
// a later booking for the same slot is not prevented.
func (s *BookingService) Confirm(userID, spotID, timeSlotID, date string) (db.Booking, error) {
	user, ok := s.Users.GetByID(userID)
	if !ok {
		return db.Booking{}, fmt.Errorf("%w: no session user", apperrors.ErrInvalidInput)
	}
	spot, ok := s.Spots.Get(spotID)
	if !ok {
		return db.Booking{}, fmt.Errorf("%w: no spot selected", apperrors.ErrInvalidInput)
	}
	slot, ok := s.Slots.Get(timeSlotID)
	if !ok {
		return db.Booking{}, fmt.Errorf("%w: no time slot selected", apperrors.ErrInvalidInput)
	}
	if slot.SpotID != spot.ID {
		return db.Booking{}, fmt.Errorf("%w: time slot does not belong to spot %s", apperrors.ErrInvalidInput, spot.ID)
	}
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return db.Booking{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", apperrors.ErrInvalidInput, date)
	}

	booking := s.Repo.Insert(db.Booking{
		UserID:     user.ID,
		SpotID:     spot.ID,
		TimeSlotID: slot.ID,
		Date:       date,
		Status:     db.BookingActive,
	})
	if s.notifier != nil {
		s.notifier.BookingConfirmed(user, booking, spot, slot)
	}
	return booking, nil
}

// ListForUser returns the user's bookings, optionally narrowed by status.
func (s *BookingService) ListForUser(userID string, status db.BookingStatus) ([]db.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", apperrors.ErrInvalidInput, status)
	}
	return s.Repo.List(repository.BookingFilter{UserID: userID, Status: status}), nil
}

// Cancel transitions an active booking to cancelled. Only the owner or
// an admin may cancel.
func (s *BookingService) Cancel(id string, actor db.User) (db.Booking, error) {
	booking, ok := s.Repo.Get(id)
	if !ok {
		return db.Booking{}, apperrors.ErrNotFound
	}
	if actor.Role != db.RoleAdmin && booking.UserID != actor.ID {
		return db.Booking{}, apperrors.ErrForbidden
	}
	if booking.Status != db.BookingActive {
		return db.Booking{}, fmt.Errorf("%w: only active bookings can be cancelled", apperrors.ErrInvalidInput)
	}
	booking.Status = db.BookingCancelled
	updated, _ := s.Repo.Update(booking.ID, booking)
	if s.notifier != nil {
		if owner, ok := s.Users.GetByID(updated.UserID); ok {
			spot, _ := s.Spots.Get(updated.SpotID)
			slot, _ := s.Slots.Get(updated.TimeSlotID)
			s.notifier.BookingCancelled(owner, updated, spot, slot)
		}
	}
	return updated, nil
}

// Admin resource-manager operations. Unlike Confirm these perform no
// referential checks: an admin-created booking may reference ids that do
// not resolve, as in the original system.

func (s *BookingService) ListAll(status db.BookingStatus) ([]db.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", apperrors.ErrInvalidInput, status)
	}
	return s.Repo.List(repository.BookingFilter{Status: status}), nil
}

func (s *BookingService) Create(b db.Booking) (db.Booking, error) {
	if err := validateBooking(&b); err != nil {
		return db.Booking{}, err
	}
	return s.Repo.Insert(b), nil
}

func (s *BookingService) Update(id string, b db.Booking) (db.Booking, error) {
	if err := validateBooking(&b); err != nil {
		return db.Booking{}, err
	}
	updated, ok := s.Repo.Update(id, b)
	if !ok {
		return db.Booking{}, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *BookingService) Delete(id string) error {
	if !s.Repo.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

func validateBooking(b *db.Booking) error {
	if b.UserID == "" || b.SpotID == "" || b.TimeSlotID == "" {
		return fmt.Errorf("%w: user_id, spot_id and time_slot_id are required", apperrors.ErrInvalidInput)
	}
	if b.Date == "" {
		b.Date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", apperrors.ErrInvalidInput, b.Date)
	}
	if b.Status == "" {
		b.Status = db.BookingActive
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: unknown booking status %q", apperrors.ErrInvalidInput, b.Status)
	}
	return nil
}
