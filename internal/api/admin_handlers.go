package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campuspark/internal/db"
	"campuspark/internal/service"
)

// AdminHandler serves the per-entity resource managers behind the admin
// role gate.
type AdminHandler struct {
	Spots    *service.SpotService
	Slots    *service.TimeSlotService
	Bookings *service.BookingService
}

func NewAdminHandler(spots *service.SpotService, slots *service.TimeSlotService,
	bookings *service.BookingService) *AdminHandler {
	return &AdminHandler{Spots: spots, Slots: slots, Bookings: bookings}
}

// Parking spots

func (h *AdminHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	spots := h.Spots.List()
	if spots == nil {
		spots = []db.ParkingSpot{}
	}
	writeJSON(w, http.StatusOK, spots)
}

func (h *AdminHandler) CreateSpot(w http.ResponseWriter, r *http.Request) {
	var req SpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	spot, err := h.Spots.Create(spotFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, spot)
}

func (h *AdminHandler) UpdateSpot(w http.ResponseWriter, r *http.Request) {
	var req SpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	spot, err := h.Spots.Update(mux.Vars(r)["id"], spotFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spot)
}

func (h *AdminHandler) DeleteSpot(w http.ResponseWriter, r *http.Request) {
	if err := h.Spots.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Parking spot deleted"})
}

// Time slots

func (h *AdminHandler) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots := h.Slots.List()
	if slots == nil {
		slots = []db.TimeSlot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *AdminHandler) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req TimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	slot, err := h.Slots.Create(timeSlotFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

func (h *AdminHandler) UpdateTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req TimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	slot, err := h.Slots.Update(mux.Vars(r)["id"], timeSlotFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (h *AdminHandler) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	if err := h.Slots.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Time slot deleted"})
}

// Bookings

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	status := db.BookingStatus(r.URL.Query().Get("status"))
	bookings, err := h.Bookings.ListAll(status)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.Create(bookingFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *AdminHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Bookings.Update(mux.Vars(r)["id"], bookingFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking deleted"})
}

func spotFromRequest(req SpotRequest) db.ParkingSpot {
	return db.ParkingSpot{
		SpotNumber:  req.SpotNumber,
		Location:    req.Location,
		Type:        req.Type,
		Status:      req.Status,
		Description: req.Description,
	}
}

func timeSlotFromRequest(req TimeSlotRequest) db.TimeSlot {
	return db.TimeSlot{
		SpotID:      req.SpotID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}
}

func bookingFromRequest(req BookingRequest) db.Booking {
	return db.Booking{
		UserID:     req.UserID,
		SpotID:     req.SpotID,
		TimeSlotID: req.TimeSlotID,
		Date:       req.Date,
		Status:     req.Status,
	}
}
