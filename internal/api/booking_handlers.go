package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campuspark/internal/auth"
	"campuspark/internal/db"
	"campuspark/internal/service"
)

// UserBookingHandler serves the booking wizard and the session user's
// own bookings.
type UserBookingHandler struct {
	Service *service.BookingService
}

func NewUserBookingHandler(svc *service.BookingService) *UserBookingHandler {
	return &UserBookingHandler{Service: svc}
}

func (h *UserBookingHandler) AvailableSpots(w http.ResponseWriter, r *http.Request) {
	vehicleType := db.VehicleType(r.URL.Query().Get("vehicle_type"))
	spots, err := h.Service.CandidateSpots(vehicleType)
	if err != nil {
		writeError(w, err)
		return
	}
	if spots == nil {
		spots = []db.ParkingSpot{}
	}
	writeJSON(w, http.StatusOK, spots)
}

func (h *UserBookingHandler) AvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Service.CandidateTimeSlots(r.URL.Query().Get("spot_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if slots == nil {
		slots = []db.TimeSlot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *UserBookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.Confirm(user.ID, req.SpotID, req.TimeSlotID, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *UserBookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	status := db.BookingStatus(r.URL.Query().Get("status"))
	bookings, err := h.Service.ListForUser(user.ID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *UserBookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	booking, err := h.Service.Cancel(mux.Vars(r)["id"], user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
