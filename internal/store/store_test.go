package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspark/internal/db"
)

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	s := New()

	first := s.InsertSpot(db.ParkingSpot{SpotNumber: "X-1", Location: "Lot X", Type: db.FourWheeler, Status: db.SpotAvailable})
	second := s.InsertSpot(db.ParkingSpot{SpotNumber: "X-2", Location: "Lot X", Type: db.FourWheeler, Status: db.SpotAvailable})

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := New()

	s.InsertSpot(db.ParkingSpot{SpotNumber: "X-1"})
	second := s.InsertSpot(db.ParkingSpot{SpotNumber: "X-2"})
	require.True(t, s.DeleteSpot(second.ID))

	third := s.InsertSpot(db.ParkingSpot{SpotNumber: "X-3"})
	assert.Equal(t, "3", third.ID, "deleted ids must not be reissued")
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := New()

	for _, number := range []string{"C-1", "A-9", "B-5"} {
		s.InsertSpot(db.ParkingSpot{SpotNumber: number})
	}

	var got []string
	for _, sp := range s.ListSpots() {
		got = append(got, sp.SpotNumber)
	}
	assert.Equal(t, []string{"C-1", "A-9", "B-5"}, got)
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	s := New()

	created := s.InsertSpot(db.ParkingSpot{SpotNumber: "X-1", Status: db.SpotAvailable})

	updated, ok := s.UpdateSpot(created.ID, db.ParkingSpot{
		ID:         "999",
		SpotNumber: "X-1",
		Status:     db.SpotMaintenance,
	})
	require.True(t, ok)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, db.SpotMaintenance, updated.Status)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	s := New()
	s.InsertSpot(db.ParkingSpot{SpotNumber: "X-1", Status: db.SpotAvailable})

	_, ok := s.UpdateSpot("42", db.ParkingSpot{SpotNumber: "ghost"})
	assert.False(t, ok)

	spots := s.ListSpots()
	require.Len(t, spots, 1)
	assert.Equal(t, "X-1", spots[0].SpotNumber)
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	s := New()

	a := s.InsertBooking(db.Booking{UserID: "1", Status: db.BookingActive})
	b := s.InsertBooking(db.Booking{UserID: "2", Status: db.BookingActive})
	c := s.InsertBooking(db.Booking{UserID: "3", Status: db.BookingActive})

	require.True(t, s.DeleteBooking(b.ID))
	assert.False(t, s.DeleteBooking(b.ID), "second delete of same id is a no-op")

	var ids []string
	for _, bk := range s.ListBookings() {
		ids = append(ids, bk.ID)
	}
	assert.Equal(t, []string{a.ID, c.ID}, ids)
}

func TestDeleteSpotDoesNotCascade(t *testing.T) {
	s := New()

	spot := s.InsertSpot(db.ParkingSpot{SpotNumber: "X-1"})
	slot := s.InsertTimeSlot(db.TimeSlot{SpotID: spot.ID, StartTime: "08:00", EndTime: "12:00", IsAvailable: true})
	booking := s.InsertBooking(db.Booking{UserID: "1", SpotID: spot.ID, TimeSlotID: slot.ID, Status: db.BookingActive})

	require.True(t, s.DeleteSpot(spot.ID))

	_, ok := s.GetTimeSlot(slot.ID)
	assert.True(t, ok, "time slot survives spot deletion")
	_, ok = s.GetBooking(booking.ID)
	assert.True(t, ok, "booking survives spot deletion")
}

func TestSeedFixtures(t *testing.T) {
	s := New()
	require.NoError(t, Seed(s))

	assert.Len(t, s.ListUsers(), 3)
	assert.Len(t, s.ListSpots(), 5)
	assert.Len(t, s.ListTimeSlots(), 5)
	assert.Len(t, s.ListBookings(), 2)

	spot, ok := s.GetSpot("3")
	require.True(t, ok)
	assert.Equal(t, "B-201", spot.SpotNumber)
	assert.Equal(t, db.TwoWheeler, spot.Type)
	assert.Equal(t, db.SpotAvailable, spot.Status)

	slot, ok := s.GetTimeSlot("5")
	require.True(t, ok)
	assert.Equal(t, "3", slot.SpotID)
	assert.Equal(t, "08:00", slot.StartTime)
	assert.Equal(t, "12:00", slot.EndTime)
	assert.True(t, slot.IsAvailable)
}
