package application

import (
	"context"
	"errors"

	"github.com/mypetvenues/services/api/internal/booking/domain"
)

var (
	// ErrBookingNotFound signals an unknown booking id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidTransition signals a status change the transition table forbids.
	ErrInvalidTransition = domain.ErrInvalidTransition
)

// BookingRepository exposes the administrative view of the booking ledger.
// FindLedger returns the raw ledger in insertion order, unsorted. Transition
// must validate the state machine and apply the change atomically, so a
// concurrent status write cannot land between the check and the update.
type BookingRepository interface {
	FindLedger(ctx context.Context) ([]domain.Booking, error)
	Transition(ctx context.Context, id int, target domain.BookingStatus) (*domain.Booking, error)
}

// BookingService describes administrative ledger use-cases. Unlike the public
// cancel operation, Transition enforces the booking state machine.
type BookingService interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Transition(ctx context.Context, id int, target domain.BookingStatus) (*domain.Booking, error)
}

// bookingService is the concrete implementation of BookingService.
type bookingService struct {
	repo BookingRepository
}

// NewBookingService creates a new administrative booking service.
func NewBookingService(repo BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.FindLedger(ctx)
}

// Transition applies the target status through the repository's atomic
// check-and-set. The repository answers nil for an unknown booking and
// ErrInvalidTransition when the transition table forbids the change.
func (s *bookingService) Transition(ctx context.Context, id int, target domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.repo.Transition(ctx, id, target)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
