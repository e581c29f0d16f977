package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypetvenues/services/api/internal/booking/domain"
)

func bookingFixture(id int, date time.Time, notes string) domain.Booking {
	return domain.Booking{
		ID:           id,
		UserID:       1,
		VenueID:      1,
		Date:         date,
		TimeSlot:     "10:00 AM - 12:00 PM",
		NumberOfPets: 1,
		Notes:        notes,
		Status:       domain.BookingStatusPending,
	}
}

func TestBookingFindAll_SortsByDateDescending(t *testing.T) {
	now := time.Now()
	repo := NewBookingRepository([]domain.Booking{
		bookingFixture(1, now.AddDate(0, 0, -5), "oldest"),
		bookingFixture(2, now.AddDate(0, 0, 5), "newest"),
		bookingFixture(3, now, "middle"),
	})

	bookings, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "newest", bookings[0].Notes)
	assert.Equal(t, "middle", bookings[1].Notes)
	assert.Equal(t, "oldest", bookings[2].Notes)
}

func TestBookingFindAll_EqualDatesKeepInsertionOrder(t *testing.T) {
	date := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	repo := NewBookingRepository([]domain.Booking{
		bookingFixture(1, date, "first"),
		bookingFixture(2, date, "second"),
		bookingFixture(3, date, "third"),
	})

	bookings, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "first", bookings[0].Notes)
	assert.Equal(t, "second", bookings[1].Notes)
	assert.Equal(t, "third", bookings[2].Notes)
}

func TestBookingFindLedger_KeepsInsertionOrder(t *testing.T) {
	now := time.Now()
	repo := NewBookingRepository([]domain.Booking{
		bookingFixture(1, now.AddDate(0, 0, -5), "oldest"),
		bookingFixture(2, now.AddDate(0, 0, 5), "newest"),
	})

	bookings, err := repo.FindLedger(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 1, bookings[0].ID)
	assert.Equal(t, 2, bookings[1].ID)
}

func TestBookingInsert_AssignsSequentialIDsPastSeed(t *testing.T) {
	now := time.Now()
	repo := NewBookingRepository([]domain.Booking{
		bookingFixture(7, now, "seeded"),
	})

	first, err := repo.Insert(context.Background(), bookingFixture(0, now, "a"))
	require.NoError(t, err)
	second, err := repo.Insert(context.Background(), bookingFixture(0, now, "b"))
	require.NoError(t, err)

	assert.Equal(t, 8, first.ID)
	assert.Equal(t, 9, second.ID)
}

func TestBookingInsert_EmptyLedgerStartsAtOne(t *testing.T) {
	repo := NewBookingRepository(nil)

	booking, err := repo.Insert(context.Background(), bookingFixture(0, time.Now(), ""))
	require.NoError(t, err)
	assert.Equal(t, 1, booking.ID)
}

func TestBookingFindByID_MissIsNilNotError(t *testing.T) {
	repo := NewBookingRepository(nil)

	booking, err := repo.FindByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestBookingUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	now := time.Now()
	repo := NewBookingRepository([]domain.Booking{
		bookingFixture(1, now, "keep me"),
	})

	updated, err := repo.UpdateStatus(context.Background(), 1, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "keep me", updated.Notes)
	assert.True(t, updated.Date.Equal(now))
}

func TestBookingTransition_AppliesAllowedChange(t *testing.T) {
	repo := NewBookingRepository([]domain.Booking{
		bookingFixture(1, time.Now(), ""),
	})

	updated, err := repo.Transition(context.Background(), 1, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
}

func TestBookingTransition_RejectsForbiddenChange(t *testing.T) {
	booking := bookingFixture(1, time.Now(), "")
	booking.Status = domain.BookingStatusCancelled
	repo := NewBookingRepository([]domain.Booking{booking})

	_, err := repo.Transition(context.Background(), 1, domain.BookingStatusCompleted)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.BookingStatusCancelled, stored.Status)
}

func TestBookingTransition_UnknownIDIsNil(t *testing.T) {
	repo := NewBookingRepository(nil)

	updated, err := repo.Transition(context.Background(), 99, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestBookingUpdateStatus_UnknownIDIsNil(t *testing.T) {
	repo := NewBookingRepository(nil)

	updated, err := repo.UpdateStatus(context.Background(), 99, domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Nil(t, updated)
}
