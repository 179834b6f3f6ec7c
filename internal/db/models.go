package db

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

type VehicleType string

const (
	TwoWheeler  VehicleType = "2-wheeler"
	FourWheeler VehicleType = "4-wheeler"
)

func (t VehicleType) Valid() bool {
	return t == TwoWheeler || t == FourWheeler
}

type SpotStatus string

const (
	SpotAvailable   SpotStatus = "available"
	SpotOccupied    SpotStatus = "occupied"
	SpotMaintenance SpotStatus = "maintenance"
)

func (s SpotStatus) Valid() bool {
	switch s {
	case SpotAvailable, SpotOccupied, SpotMaintenance:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type ParkingSpot struct {
	ID          string      `json:"id"`
	SpotNumber  string      `json:"spot_number"`
	Location    string      `json:"location"`
	Type        VehicleType `json:"type"`
	Status      SpotStatus  `json:"status"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

type TimeSlot struct {
	ID          string    `json:"id"`
	SpotID      string    `json:"spot_id"`
	StartTime   string    `json:"start_time"` // "HH:MM"
	EndTime     string    `json:"end_time"`   // "HH:MM"
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	SpotID     string        `json:"spot_id"`
	TimeSlotID string        `json:"time_slot_id"`
	Date       string        `json:"date"` // "YYYY-MM-DD"
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
