package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"campuspark/internal/repository"
	"campuspark/internal/store"
)

const testSecret = "test-secret"

type testRepos struct {
	users    repository.UserRepository
	spots    repository.SpotRepository
	slots    repository.TimeSlotRepository
	bookings repository.BookingRepository
}

func emptyRepos(t *testing.T) testRepos {
	t.Helper()
	st := store.New()
	return testRepos{
		users:    repository.NewUserRepository(st),
		spots:    repository.NewSpotRepository(st),
		slots:    repository.NewTimeSlotRepository(st),
		bookings: repository.NewBookingRepository(st),
	}
}

func seededRepos(t *testing.T) testRepos {
	t.Helper()
	st := store.New()
	require.NoError(t, store.Seed(st))
	return testRepos{
		users:    repository.NewUserRepository(st),
		spots:    repository.NewSpotRepository(st),
		slots:    repository.NewTimeSlotRepository(st),
		bookings: repository.NewBookingRepository(st),
	}
}

func seededBookingService(t *testing.T) (*BookingService, testRepos) {
	t.Helper()
	repos := seededRepos(t)
	svc := NewBookingService(repos.bookings, repos.spots, repos.slots, repos.users, nil)
	return svc, repos
}
