package service

import (
	"fmt"
	"log"
	"time"

	"campuspark/internal/db"
	"campuspark/internal/repository"
)

type JobService struct {
	Repo repository.BookingRepository
}

func NewJobService(repo repository.BookingRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompleteExpiredBookings marks active bookings dated before the given
// time as completed. It returns how many bookings were updated.
func (s *JobService) CompleteExpiredBookings(now time.Time) (int, error) {
	today := now.UTC().Format("2006-01-02")

	expired := s.Repo.ActiveBefore(today)
	if len(expired) == 0 {
		log.Println("Cron Job: no active bookings past their date.")
		return 0, nil
	}

	updated := 0
	for _, b := range expired {
		b.Status = db.BookingCompleted
		if _, ok := s.Repo.Update(b.ID, b); ok {
			updated++
		}
	}
	if updated != len(expired) {
		return updated, fmt.Errorf("cron job: only %d of %d expired bookings updated", updated, len(expired))
	}

	log.Printf("Cron Job: marked %d bookings as completed.", updated)
	return updated, nil
}
