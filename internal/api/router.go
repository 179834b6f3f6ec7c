package api

import (
	"github.com/gorilla/mux"

	"campuspark/internal/auth"
	"campuspark/internal/db"
	"campuspark/internal/repository"
)

// NewRouter assembles the route table. Everything except login and
// signup requires a session; /api/admin/* additionally requires the
// admin role.
func NewRouter(secret string, users repository.UserRepository, authHandler *AuthHandler,
	bookingHandler *UserBookingHandler, adminHandler *AdminHandler,
	dashboardHandler *DashboardHandler) *mux.Router {

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")

	// Authenticated endpoints (any role)
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(auth.Middleware(secret, users))
	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	authed.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	authed.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET")
	authed.HandleFunc("/bookings/available-spots", bookingHandler.AvailableSpots).Methods("GET")
	authed.HandleFunc("/bookings/available-slots", bookingHandler.AvailableTimeSlots).Methods("GET")
	authed.HandleFunc("/bookings", bookingHandler.ConfirmBooking).Methods("POST")
	authed.HandleFunc("/my-bookings", bookingHandler.MyBookings).Methods("GET")
	authed.HandleFunc("/my-bookings/{id}/cancel", bookingHandler.CancelBooking).Methods("POST")

	// Admin endpoints (protected)
	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireRole(db.RoleAdmin))
	admin.HandleFunc("/spots", adminHandler.ListSpots).Methods("GET")
	admin.HandleFunc("/spots", adminHandler.CreateSpot).Methods("POST")
	admin.HandleFunc("/spots/{id}", adminHandler.UpdateSpot).Methods("PUT")
	admin.HandleFunc("/spots/{id}", adminHandler.DeleteSpot).Methods("DELETE")
	admin.HandleFunc("/time-slots", adminHandler.ListTimeSlots).Methods("GET")
	admin.HandleFunc("/time-slots", adminHandler.CreateTimeSlot).Methods("POST")
	admin.HandleFunc("/time-slots/{id}", adminHandler.UpdateTimeSlot).Methods("PUT")
	admin.HandleFunc("/time-slots/{id}", adminHandler.DeleteTimeSlot).Methods("DELETE")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings", adminHandler.CreateBooking).Methods("POST")
	admin.HandleFunc("/bookings/{id}", adminHandler.UpdateBooking).Methods("PUT")
	admin.HandleFunc("/bookings/{id}", adminHandler.DeleteBooking).Methods("DELETE")

	return r
}
