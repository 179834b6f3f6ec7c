package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspark/internal/db"
)

func TestCompleteExpiredBookings(t *testing.T) {
	repos := emptyRepos(t)
	svc := NewJobService(repos.bookings)

	expired := repos.bookings.Insert(db.Booking{
		UserID: "2", SpotID: "3", TimeSlotID: "5",
		Date: "2026-09-10", Status: db.BookingActive,
	})
	future := repos.bookings.Insert(db.Booking{
		UserID: "2", SpotID: "3", TimeSlotID: "5",
		Date: "2026-09-20", Status: db.BookingActive,
	})
	sameDay := repos.bookings.Insert(db.Booking{
		UserID: "3", SpotID: "1", TimeSlotID: "1",
		Date: "2026-09-15", Status: db.BookingActive,
	})

	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	updated, err := svc.CompleteExpiredBookings(now)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	got, _ := repos.bookings.Get(expired.ID)
	assert.Equal(t, db.BookingCompleted, got.Status)

	got, _ = repos.bookings.Get(future.ID)
	assert.Equal(t, db.BookingActive, got.Status)

	got, _ = repos.bookings.Get(sameDay.ID)
	assert.Equal(t, db.BookingActive, got.Status, "same-day bookings are not expired")
}

func TestCompleteExpiredBookingsIgnoresTerminalStates(t *testing.T) {
	repos := emptyRepos(t)
	svc := NewJobService(repos.bookings)

	cancelled := repos.bookings.Insert(db.Booking{
		UserID: "2", SpotID: "3", TimeSlotID: "5",
		Date: "2020-01-01", Status: db.BookingCancelled,
	})

	updated, err := svc.CompleteExpiredBookings(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, updated)

	got, _ := repos.bookings.Get(cancelled.ID)
	assert.Equal(t, db.BookingCancelled, got.Status)
}
