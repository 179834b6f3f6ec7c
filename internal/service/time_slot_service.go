package service

import (
	"fmt"
	"time"

	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
	"campuspark/internal/repository"
)

type TimeSlotService struct {
	Repo repository.TimeSlotRepository
}

func NewTimeSlotService(repo repository.TimeSlotRepository) *TimeSlotService {
	return &TimeSlotService{Repo: repo}
}

func (s *TimeSlotService) List() []db.TimeSlot {
	return s.Repo.List()
}

func (s *TimeSlotService) Get(id string) (db.TimeSlot, error) {
	slot, ok := s.Repo.Get(id)
	if !ok {
		return db.TimeSlot{}, apperrors.ErrNotFound
	}
	return slot, nil
}

func (s *TimeSlotService) Create(slot db.TimeSlot) (db.TimeSlot, error) {
	if err := validateTimeSlot(slot); err != nil {
		return db.TimeSlot{}, err
	}
	return s.Repo.Insert(slot), nil
}

func (s *TimeSlotService) Update(id string, slot db.TimeSlot) (db.TimeSlot, error) {
	if err := validateTimeSlot(slot); err != nil {
		return db.TimeSlot{}, err
	}
	updated, ok := s.Repo.Update(id, slot)
	if !ok {
		return db.TimeSlot{}, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *TimeSlotService) Delete(id string) error {
	if !s.Repo.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

// validateTimeSlot checks field presence and clock format only. The spot
// reference is not verified and start/end ordering is not enforced,
// matching the original system's contract.
func validateTimeSlot(slot db.TimeSlot) error {
	if slot.SpotID == "" {
		return fmt.Errorf("%w: spot_id is required", apperrors.ErrInvalidInput)
	}
	for _, clock := range []string{slot.StartTime, slot.EndTime} {
		if _, err := time.Parse("15:04", clock); err != nil {
			return fmt.Errorf("%w: times must be HH:MM, got %q", apperrors.ErrInvalidInput, clock)
		}
	}
	return nil
}
