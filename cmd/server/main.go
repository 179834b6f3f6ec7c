package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"campuspark/internal/api"
	"campuspark/internal/repository"
	"campuspark/internal/service"
	"campuspark/internal/store"
)

func main() {
	godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	st := store.New()
	if err := store.Seed(st); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	userRepo := repository.NewUserRepository(st)
	spotRepo := repository.NewSpotRepository(st)
	slotRepo := repository.NewTimeSlotRepository(st)
	bookingRepo := repository.NewBookingRepository(st)

	notifier := service.NewNotifyService()
	authSvc := service.NewAuthService(userRepo, secret)
	spotSvc := service.NewSpotService(spotRepo)
	slotSvc := service.NewTimeSlotService(slotRepo)
	bookingSvc := service.NewBookingService(bookingRepo, spotRepo, slotRepo, userRepo, notifier)
	dashboardSvc := service.NewDashboardService(spotRepo, bookingRepo, userRepo)
	jobSvc := service.NewJobService(bookingRepo)

	authHandler := api.NewAuthHandler(authSvc)
	bookingHandler := api.NewUserBookingHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(spotSvc, slotSvc, bookingSvc)
	dashboardHandler := api.NewDashboardHandler(dashboardSvc)

	r := api.NewRouter(secret, userRepo, authHandler, bookingHandler, adminHandler, dashboardHandler)

	schedule := os.Getenv("BOOKING_SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "@hourly"
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := jobSvc.CompleteExpiredBookings(time.Now()); err != nil {
			log.Printf("Booking sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid BOOKING_SWEEP_SCHEDULE %q: %v", schedule, err)
	}
	c.Start()

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(origins, ",")),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
