package store

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campuspark/internal/db"
)

// SeedPassword is the password every seeded account accepts.
const SeedPassword = "password123"

// Seed loads the campus fixture data into an empty store. Ids are
// assigned in insertion order, so references below are stable: spot
// "B-201" gets id "3" and its morning slot gets id "5".
func Seed(s *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	users := []db.User{
		{Email: "admin@college.edu", Name: "Admin User", Role: db.RoleAdmin},
		{Email: "student@college.edu", Name: "John Student", Role: db.RoleStudent},
		{Email: "staff@college.edu", Name: "Jane Staff", Role: db.RoleStaff},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		s.InsertUser(u)
	}

	spots := []db.ParkingSpot{
		{SpotNumber: "A-101", Location: "Building A - Ground Floor", Type: db.FourWheeler, Status: db.SpotAvailable, Description: "Near main entrance"},
		{SpotNumber: "A-102", Location: "Building A - Ground Floor", Type: db.FourWheeler, Status: db.SpotOccupied, Description: "Covered parking"},
		{SpotNumber: "B-201", Location: "Building B - First Floor", Type: db.TwoWheeler, Status: db.SpotAvailable, Description: "Two-wheeler section"},
		{SpotNumber: "B-202", Location: "Building B - First Floor", Type: db.TwoWheeler, Status: db.SpotAvailable, Description: "Two-wheeler section"},
		{SpotNumber: "C-301", Location: "Building C - Basement", Type: db.FourWheeler, Status: db.SpotMaintenance, Description: "Under maintenance"},
	}
	for _, sp := range spots {
		s.InsertSpot(sp)
	}

	slots := []db.TimeSlot{
		{SpotID: "1", StartTime: "08:00", EndTime: "12:00", IsAvailable: true},
		{SpotID: "1", StartTime: "12:00", EndTime: "16:00", IsAvailable: true},
		{SpotID: "1", StartTime: "16:00", EndTime: "20:00", IsAvailable: false},
		{SpotID: "2", StartTime: "08:00", EndTime: "12:00", IsAvailable: false},
		{SpotID: "3", StartTime: "08:00", EndTime: "12:00", IsAvailable: true},
	}
	for _, ts := range slots {
		s.InsertTimeSlot(ts)
	}

	today := time.Now().UTC().Format("2006-01-02")
	bookings := []db.Booking{
		{UserID: "2", SpotID: "2", TimeSlotID: "4", Date: today, Status: db.BookingActive},
		{UserID: "3", SpotID: "1", TimeSlotID: "3", Date: today, Status: db.BookingActive},
	}
	for _, b := range bookings {
		s.InsertBooking(b)
	}

	return nil
}
