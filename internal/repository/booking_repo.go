package repository

import (
	"campuspark/internal/db"
	"campuspark/internal/store"
)

// BookingFilter narrows List results. Zero values match everything.
type BookingFilter struct {
	UserID string
	Status db.BookingStatus
}

type BookingRepository interface {
	Get(id string) (db.Booking, bool)
	List(filter BookingFilter) []db.Booking
	Insert(b db.Booking) db.Booking
	Update(id string, b db.Booking) (db.Booking, bool)
	Delete(id string) bool
	ActiveBefore(date string) []db.Booking
}

type bookingRepository struct {
	store *store.Store
}

func NewBookingRepository(s *store.Store) BookingRepository {
	return &bookingRepository{store: s}
}

func (r *bookingRepository) Get(id string) (db.Booking, bool) {
	return r.store.GetBooking(id)
}

func (r *bookingRepository) List(filter BookingFilter) []db.Booking {
	var out []db.Booking
	for _, b := range r.store.ListBookings() {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *bookingRepository) Insert(b db.Booking) db.Booking {
	return r.store.InsertBooking(b)
}

func (r *bookingRepository) Update(id string, b db.Booking) (db.Booking, bool) {
	return r.store.UpdateBooking(id, b)
}

func (r *bookingRepository) Delete(id string) bool {
	return r.store.DeleteBooking(id)
}

// ActiveBefore returns active bookings dated strictly before the given
// "YYYY-MM-DD" date. The lexicographic comparison is exact for this
// format.
func (r *bookingRepository) ActiveBefore(date string) []db.Booking {
	var out []db.Booking
	for _, b := range r.store.ListBookings() {
		if b.Status == db.BookingActive && b.Date < date {
			out = append(out, b)
		}
	}
	return out
}
