package entities

// ChartPoint is one bar of a dashboard chart.
type ChartPoint struct {
	Label    string `json:"label"`
	Bookings int    `json:"bookings"`
}

type DashboardStats struct {
	TotalSpots     int `json:"total_spots"`
	AvailableSpots int `json:"available_spots"`
	TotalBookings  int `json:"total_bookings"`
	ActiveBookings int `json:"active_bookings"`
	TotalUsers     int `json:"total_users"`
	OccupancyRate  int `json:"occupancy_rate"`

	BookingsBySpot []ChartPoint `json:"bookings_by_spot"`
	BookingsByHour []ChartPoint `json:"bookings_by_hour"`
}
