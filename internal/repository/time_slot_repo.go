package repository

import (
	"campuspark/internal/db"
	"campuspark/internal/store"
)

type TimeSlotRepository interface {
	Get(id string) (db.TimeSlot, bool)
	List() []db.TimeSlot
	ListBySpot(spotID string, onlyAvailable bool) []db.TimeSlot
	Insert(ts db.TimeSlot) db.TimeSlot
	Update(id string, ts db.TimeSlot) (db.TimeSlot, bool)
	Delete(id string) bool
}

type timeSlotRepository struct {
	store *store.Store
}

func NewTimeSlotRepository(s *store.Store) TimeSlotRepository {
	return &timeSlotRepository{store: s}
}

func (r *timeSlotRepository) Get(id string) (db.TimeSlot, bool) {
	return r.store.GetTimeSlot(id)
}

func (r *timeSlotRepository) List() []db.TimeSlot {
	return r.store.ListTimeSlots()
}

func (r *timeSlotRepository) ListBySpot(spotID string, onlyAvailable bool) []db.TimeSlot {
	var out []db.TimeSlot
	for _, ts := range r.store.ListTimeSlots() {
		if ts.SpotID != spotID {
			continue
		}
		if onlyAvailable && !ts.IsAvailable {
			continue
		}
		out = append(out, ts)
	}
	return out
}

func (r *timeSlotRepository) Insert(ts db.TimeSlot) db.TimeSlot {
	return r.store.InsertTimeSlot(ts)
}

func (r *timeSlotRepository) Update(id string, ts db.TimeSlot) (db.TimeSlot, bool) {
	return r.store.UpdateTimeSlot(id, ts)
}

func (r *timeSlotRepository) Delete(id string) bool {
	return r.store.DeleteTimeSlot(id)
}
