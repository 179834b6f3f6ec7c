package service

import (
	"math"

	"campuspark/internal/db"
	"campuspark/internal/entities"
	"campuspark/internal/repository"
)

type DashboardService struct {
	Spots    repository.SpotRepository
	Bookings repository.BookingRepository
	Users    repository.UserRepository
}

func NewDashboardService(spots repository.SpotRepository, bookings repository.BookingRepository,
	users repository.UserRepository) *DashboardService {
	return &DashboardService{Spots: spots, Bookings: bookings, Users: users}
}

// Stats aggregates the dashboard counters. The chart payloads are fixed
// sample data, not derived from the booking list.
func (s *DashboardService) Stats() entities.DashboardStats {
	stats := entities.DashboardStats{
		BookingsBySpot: bookingsBySpotSample(),
		BookingsByHour: bookingsByHourSample(),
	}

	spots := s.Spots.List()
	stats.TotalSpots = len(spots)
	for _, spot := range spots {
		if spot.Status == db.SpotAvailable {
			stats.AvailableSpots++
		}
	}

	bookings := s.Bookings.List(repository.BookingFilter{})
	stats.TotalBookings = len(bookings)
	for _, b := range bookings {
		if b.Status == db.BookingActive {
			stats.ActiveBookings++
		}
	}

	for _, u := range s.Users.List() {
		if u.Role != db.RoleAdmin {
			stats.TotalUsers++
		}
	}

	if stats.TotalSpots > 0 {
		occupied := float64(stats.TotalSpots - stats.AvailableSpots)
		stats.OccupancyRate = int(math.Round(occupied / float64(stats.TotalSpots) * 100))
	}

	return stats
}

func bookingsBySpotSample() []entities.ChartPoint {
	return []entities.ChartPoint{
		{Label: "A-101", Bookings: 12},
		{Label: "A-102", Bookings: 18},
		{Label: "B-201", Bookings: 8},
		{Label: "B-202", Bookings: 6},
		{Label: "C-301", Bookings: 3},
	}
}

func bookingsByHourSample() []entities.ChartPoint {
	return []entities.ChartPoint{
		{Label: "8AM", Bookings: 15},
		{Label: "10AM", Bookings: 22},
		{Label: "12PM", Bookings: 28},
		{Label: "2PM", Bookings: 18},
		{Label: "4PM", Bookings: 12},
		{Label: "6PM", Bookings: 8},
	}
}
