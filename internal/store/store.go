package store

import (
	"strconv"
	"sync"
	"time"

	"campuspark/internal/db"
)

// Store is the single source of truth for all entities. Tables keep
// insertion order; ids come from per-entity monotonic counters and are
// never reused after a delete.
type Store struct {
	mu sync.RWMutex

	users    []db.User
	spots    []db.ParkingSpot
	slots    []db.TimeSlot
	bookings []db.Booking

	userSeq    int
	spotSeq    int
	slotSeq    int
	bookingSeq int
}

func New() *Store {
	return &Store{}
}

// Users

func (s *Store) InsertUser(u db.User) db.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSeq++
	u.ID = strconv.Itoa(s.userSeq)
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, u)
	return u
}

func (s *Store) GetUser(id string) (db.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return db.User{}, false
}

func (s *Store) ListUsers() []db.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db.User, len(s.users))
	copy(out, s.users)
	return out
}

// Parking spots

func (s *Store) InsertSpot(sp db.ParkingSpot) db.ParkingSpot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spotSeq++
	sp.ID = strconv.Itoa(s.spotSeq)
	sp.CreatedAt = time.Now().UTC()
	s.spots = append(s.spots, sp)
	return sp
}

func (s *Store) GetSpot(id string) (db.ParkingSpot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.spots {
		if sp.ID == id {
			return sp, true
		}
	}
	return db.ParkingSpot{}, false
}

func (s *Store) ListSpots() []db.ParkingSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db.ParkingSpot, len(s.spots))
	copy(out, s.spots)
	return out
}

// UpdateSpot replaces every field except ID and CreatedAt. Returns the
// stored record and false if the id is unknown.
func (s *Store) UpdateSpot(id string, sp db.ParkingSpot) (db.ParkingSpot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.spots {
		if s.spots[i].ID == id {
			sp.ID = s.spots[i].ID
			sp.CreatedAt = s.spots[i].CreatedAt
			s.spots[i] = sp
			return sp, true
		}
	}
	return db.ParkingSpot{}, false
}

// DeleteSpot removes the spot with the given id. Time slots and bookings
// referencing it are left in place (no cascade).
func (s *Store) DeleteSpot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.spots {
		if s.spots[i].ID == id {
			s.spots = append(s.spots[:i], s.spots[i+1:]...)
			return true
		}
	}
	return false
}

// Time slots

func (s *Store) InsertTimeSlot(ts db.TimeSlot) db.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slotSeq++
	ts.ID = strconv.Itoa(s.slotSeq)
	ts.CreatedAt = time.Now().UTC()
	s.slots = append(s.slots, ts)
	return ts
}

func (s *Store) GetTimeSlot(id string) (db.TimeSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ts := range s.slots {
		if ts.ID == id {
			return ts, true
		}
	}
	return db.TimeSlot{}, false
}

func (s *Store) ListTimeSlots() []db.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db.TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *Store) UpdateTimeSlot(id string, ts db.TimeSlot) (db.TimeSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].ID == id {
			ts.ID = s.slots[i].ID
			ts.CreatedAt = s.slots[i].CreatedAt
			s.slots[i] = ts
			return ts, true
		}
	}
	return db.TimeSlot{}, false
}

func (s *Store) DeleteTimeSlot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].ID == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return true
		}
	}
	return false
}

// Bookings

func (s *Store) InsertBooking(b db.Booking) db.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookingSeq++
	b.ID = strconv.Itoa(s.bookingSeq)
	b.CreatedAt = time.Now().UTC()
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) GetBooking(id string) (db.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return db.Booking{}, false
}

func (s *Store) ListBookings() []db.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) UpdateBooking(id string, b db.Booking) (db.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b.ID = s.bookings[i].ID
			b.CreatedAt = s.bookings[i].CreatedAt
			s.bookings[i] = b
			return b, true
		}
	}
	return db.Booking{}, false
}

func (s *Store) DeleteBooking(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}
