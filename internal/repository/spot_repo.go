package repository

import (
	"campuspark/internal/db"
	"campuspark/internal/store"
)

type SpotRepository interface {
	Get(id string) (db.ParkingSpot, bool)
	List() []db.ParkingSpot
	Insert(sp db.ParkingSpot) db.ParkingSpot
	Update(id string, sp db.ParkingSpot) (db.ParkingSpot, bool)
	Delete(id string) bool
}

type spotRepository struct {
	store *store.Store
}

func NewSpotRepository(s *store.Store) SpotRepository {
	return &spotRepository{store: s}
}

func (r *spotRepository) Get(id string) (db.ParkingSpot, bool) {
	return r.store.GetSpot(id)
}

func (r *spotRepository) List() []db.ParkingSpot {
	return r.store.ListSpots()
}

func (r *spotRepository) Insert(sp db.ParkingSpot) db.ParkingSpot {
	return r.store.InsertSpot(sp)
}

func (r *spotRepository) Update(id string, sp db.ParkingSpot) (db.ParkingSpot, bool) {
	return r.store.UpdateSpot(id, sp)
}

// Delete removes the spot only. Slots and bookings that reference it are
// intentionally left behind, matching the original system's behavior.
func (r *spotRepository) Delete(id string) bool {
	return r.store.DeleteSpot(id)
}
