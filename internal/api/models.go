package api

import (
	"encoding/json"
	"net/http"

	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
)

// Auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Role     db.Role `json:"role"`
}

type SessionResponse struct {
	Token string  `json:"token"`
	User  db.User `json:"user"`
}

// Resource managers
type SpotRequest struct {
	SpotNumber  string         `json:"spot_number"`
	Location    string         `json:"location"`
	Type        db.VehicleType `json:"type"`
	Status      db.SpotStatus  `json:"status"`
	Description string         `json:"description"`
}

type TimeSlotRequest struct {
	SpotID      string `json:"spot_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type BookingRequest struct {
	UserID     string           `json:"user_id"`
	SpotID     string           `json:"spot_id"`
	TimeSlotID string           `json:"time_slot_id"`
	Date       string           `json:"date"`
	Status     db.BookingStatus `json:"status"`
}

// Booking wizard confirmation
type ConfirmBookingRequest struct {
	SpotID     string `json:"spot_id"`
	TimeSlotID string `json:"time_slot_id"`
	Date       string `json:"date"`
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	httpErr := apperrors.FromError(err)
	writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
}
