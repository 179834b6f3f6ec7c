package service

import (
	"fmt"

	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
	"campuspark/internal/repository"
)

type SpotService struct {
	Repo repository.SpotRepository
}

func NewSpotService(repo repository.SpotRepository) *SpotService {
	return &SpotService{Repo: repo}
}

func (s *SpotService) List() []db.ParkingSpot {
	return s.Repo.List()
}

func (s *SpotService) Get(id string) (db.ParkingSpot, error) {
	spot, ok := s.Repo.Get(id)
	if !ok {
		return db.ParkingSpot{}, apperrors.ErrNotFound
	}
	return spot, nil
}

func (s *SpotService) Create(spot db.ParkingSpot) (db.ParkingSpot, error) {
	if err := validateSpot(&spot); err != nil {
		return db.ParkingSpot{}, err
	}
	return s.Repo.Insert(spot), nil
}

func (s *SpotService) Update(id string, spot db.ParkingSpot) (db.ParkingSpot, error) {
	if err := validateSpot(&spot); err != nil {
		return db.ParkingSpot{}, err
	}
	updated, ok := s.Repo.Update(id, spot)
	if !ok {
		return db.ParkingSpot{}, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *SpotService) Delete(id string) error {
	if !s.Repo.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

func validateSpot(spot *db.ParkingSpot) error {
	if spot.SpotNumber == "" || spot.Location == "" {
		return fmt.Errorf("%w: spot_number and location are required", apperrors.ErrInvalidInput)
	}
	if !spot.Type.Valid() {
		return fmt.Errorf("%w: unknown vehicle type %q", apperrors.ErrInvalidInput, spot.Type)
	}
	if spot.Status == "" {
		spot.Status = db.SpotAvailable
	}
	if !spot.Status.Valid() {
		return fmt.Errorf("%w: unknown spot status %q", apperrors.ErrInvalidInput, spot.Status)
	}
	return nil
}
