package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypetvenues/services/api/internal/booking/domain"
	"github.com/mypetvenues/services/api/internal/infrastructure/memory"
)

func ledgerWith(status domain.BookingStatus) *memory.BookingRepository {
	return memory.NewBookingRepository([]domain.Booking{
		{ID: 1, UserID: 1, VenueID: 1, Date: time.Now(), Status: status},
	})
}

func TestTransition_PendingToConfirmed(t *testing.T) {
	service := NewBookingService(ledgerWith(domain.BookingStatusPending))

	booking, err := service.Transition(context.Background(), 1, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestTransition_ConfirmedToCompleted(t *testing.T) {
	service := NewBookingService(ledgerWith(domain.BookingStatusConfirmed))

	booking, err := service.Transition(context.Background(), 1, domain.BookingStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
}

func TestTransition_TerminalStateIsRejected(t *testing.T) {
	service := NewBookingService(ledgerWith(domain.BookingStatusCompleted))

	_, err := service.Transition(context.Background(), 1, domain.BookingStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_PendingToCompletedIsRejected(t *testing.T) {
	service := NewBookingService(ledgerWith(domain.BookingStatusPending))

	_, err := service.Transition(context.Background(), 1, domain.BookingStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_CancelCommittedFirstBlocksCompletion(t *testing.T) {
	repo := ledgerWith(domain.BookingStatusConfirmed)
	service := NewBookingService(repo)

	// A cancellation through the public ledger path lands before the admin
	// transition runs; the terminal state must survive.
	_, err := repo.UpdateStatus(context.Background(), 1, domain.BookingStatusCancelled)
	require.NoError(t, err)

	_, err = service.Transition(context.Background(), 1, domain.BookingStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	booking, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestTransition_UnknownBooking(t *testing.T) {
	service := NewBookingService(memory.NewBookingRepository(nil))

	_, err := service.Transition(context.Background(), 42, domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ReturnsLedgerInInsertionOrder(t *testing.T) {
	now := time.Now()
	repo := memory.NewBookingRepository([]domain.Booking{
		{ID: 1, Date: now.AddDate(0, 0, -3), Status: domain.BookingStatusCompleted},
		{ID: 2, Date: now.AddDate(0, 0, 3), Status: domain.BookingStatusPending},
	})
	service := NewBookingService(repo)

	bookings, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 1, bookings[0].ID)
	assert.Equal(t, 2, bookings[1].ID)
}
