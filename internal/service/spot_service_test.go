package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
)

func TestSpotCreateAppendsOneRecord(t *testing.T) {
	repos := seededRepos(t)
	svc := NewSpotService(repos.spots)

	before := svc.List()
	created, err := svc.Create(db.ParkingSpot{
		SpotNumber:  "D-401",
		Location:    "Building D - Roof",
		Type:        db.FourWheeler,
		Description: "Open air",
	})
	require.NoError(t, err)

	assert.Equal(t, "6", created.ID)
	assert.Equal(t, db.SpotAvailable, created.Status, "status defaults to available")
	assert.False(t, created.CreatedAt.IsZero())

	after := svc.List()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created, after[len(after)-1])
}

func TestSpotCreateValidation(t *testing.T) {
	repos := seededRepos(t)
	svc := NewSpotService(repos.spots)

	_, err := svc.Create(db.ParkingSpot{Location: "nowhere", Type: db.FourWheeler})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(db.ParkingSpot{SpotNumber: "D-401", Location: "Building D", Type: "truck"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestSpotUpdateReplacesFields(t *testing.T) {
	repos := seededRepos(t)
	svc := NewSpotService(repos.spots)

	updated, err := svc.Update("1", db.ParkingSpot{
		SpotNumber: "A-101",
		Location:   "Building A - Ground Floor",
		Type:       db.FourWheeler,
		Status:     db.SpotMaintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, db.SpotMaintenance, updated.Status)
	assert.Equal(t, "", updated.Description, "full replace clears omitted fields")

	_, err = svc.Update("99", db.ParkingSpot{SpotNumber: "Z-1", Location: "Zed", Type: db.TwoWheeler})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSpotDeleteKeepsOthersInOrder(t *testing.T) {
	repos := seededRepos(t)
	svc := NewSpotService(repos.spots)

	require.NoError(t, svc.Delete("2"))
	assert.ErrorIs(t, svc.Delete("2"), apperrors.ErrNotFound)

	var ids []string
	for _, sp := range svc.List() {
		ids = append(ids, sp.ID)
	}
	assert.Equal(t, []string{"1", "3", "4", "5"}, ids)
}

func TestTimeSlotCreateAllowsDanglingSpot(t *testing.T) {
	repos := seededRepos(t)
	svc := NewTimeSlotService(repos.slots)

	// Referential integrity is not enforced for time slots.
	slot, err := svc.Create(db.TimeSlot{SpotID: "99", StartTime: "06:00", EndTime: "08:00", IsAvailable: true})
	require.NoError(t, err)
	assert.Equal(t, "6", slot.ID)
}

func TestTimeSlotCreateValidatesClockFormat(t *testing.T) {
	repos := seededRepos(t)
	svc := NewTimeSlotService(repos.slots)

	_, err := svc.Create(db.TimeSlot{SpotID: "1", StartTime: "8am", EndTime: "12:00"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(db.TimeSlot{StartTime: "08:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestTimeSlotUpdateAndDelete(t *testing.T) {
	repos := seededRepos(t)
	svc := NewTimeSlotService(repos.slots)

	updated, err := svc.Update("3", db.TimeSlot{SpotID: "1", StartTime: "16:00", EndTime: "20:00", IsAvailable: true})
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)

	require.NoError(t, svc.Delete("3"))
	_, err = svc.Get("3")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Len(t, svc.List(), 4)
}
