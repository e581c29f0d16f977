package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mypetvenues/services/api/internal/booking/domain"
)

// BookingRepository implements the public and administrative booking ports
// over an in-memory ledger. A mutex keeps id assignment atomic and gap-free
// under concurrent HTTP handlers.
type BookingRepository struct {
	mu       sync.Mutex
	bookings []domain.Booking
	nextID   int
}

// NewBookingRepository creates a ledger seeded with the given bookings. The
// id counter starts just past the highest seeded id.
func NewBookingRepository(bookings []domain.Booking) *BookingRepository {
	nextID := 1
	for _, b := range bookings {
		if b.ID >= nextID {
			nextID = b.ID + 1
		}
	}
	return &BookingRepository{
		bookings: append([]domain.Booking(nil), bookings...),
		nextID:   nextID,
	}
}

// FindAll returns the ledger ordered by booking date descending. Equal dates
// keep their original insertion order.
func (r *BookingRepository) FindAll(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	results := append([]domain.Booking(nil), r.bookings...)
	r.mu.Unlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})
	return results, nil
}

// FindLedger returns the raw ledger in insertion order.
func (r *BookingRepository) FindLedger(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Booking(nil), r.bookings...), nil
}

// FindByID returns the booking with the given id, or nil when no such
// booking exists.
func (r *BookingRepository) FindByID(_ context.Context, id int) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

// Insert assigns the next sequential identity, appends the booking to the
// ledger, and returns the stored record.
func (r *BookingRepository) Insert(_ context.Context, booking domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

// Transition applies target to the booking with the given id only if the
// state machine allows it from the booking's current status. The check and the
// write happen under the same lock, so a concurrent status change cannot slip
// between them. An unknown id is a no-op returning nil; a forbidden change
// returns domain.ErrInvalidTransition.
func (r *BookingRepository) Transition(_ context.Context, id int, target domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID != id {
			continue
		}
		if !r.bookings[i].Status.CanTransitionTo(target) {
			return nil, domain.ErrInvalidTransition
		}
		r.bookings[i].Status = target
		updated := r.bookings[i]
		return &updated, nil
	}
	return nil, nil
}

// UpdateStatus sets the status of the booking with the given id and returns
// the updated record, leaving every other field unchanged. An unknown id is
// a no-op returning nil.
func (r *BookingRepository) UpdateStatus(_ context.Context, id int, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			updated := r.bookings[i]
			return &updated, nil
		}
	}
	return nil, nil
}
