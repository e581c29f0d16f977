package application

import (
	"context"
	"time"

	"github.com/mypetvenues/services/api/internal/booking/domain"
)

// BookingRepository abstracts the booking ledger store. FindAll returns
// bookings ordered by date descending with a stable tie-break on insertion
// order; Insert assigns the next sequential identity.
type BookingRepository interface {
	FindAll(ctx context.Context) ([]domain.Booking, error)
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	Insert(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	UpdateStatus(ctx context.Context, id int, status domain.BookingStatus) (*domain.Booking, error)
}

// CreateBookingCommand captures draft input for a new reservation. The draft
// carries no status; new bookings always start out pending.
type CreateBookingCommand struct {
	UserID       int
	VenueID      int
	Date         time.Time
	TimeSlot     string
	NumberOfPets int
	Notes        string
}

// BookingService describes ledger use-cases available to the public surface.
type BookingService interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Create(ctx context.Context, cmd CreateBookingCommand) (domain.Booking, error)
	Cancel(ctx context.Context, id int) error
}

// bookingService is the concrete implementation of BookingService.
type bookingService struct {
	repo BookingRepository
}

// NewBookingService creates a new booking ledger service.
func NewBookingService(repo BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.FindAll(ctx)
}

// Create stores the draft with a freshly assigned id and status forced to
// pending, and returns the stored record.
func (s *bookingService) Create(ctx context.Context, cmd CreateBookingCommand) (domain.Booking, error) {
	booking := domain.Booking{
		UserID:       cmd.UserID,
		VenueID:      cmd.VenueID,
		Date:         cmd.Date,
		TimeSlot:     cmd.TimeSlot,
		NumberOfPets: cmd.NumberOfPets,
		Notes:        cmd.Notes,
		Status:       domain.BookingStatusPending,
	}
	return s.repo.Insert(ctx, booking)
}

// Cancel marks the booking cancelled. An unknown id is a no-op, not an error.
func (s *bookingService) Cancel(ctx context.Context, id int) error {
	_, err := s.repo.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	return err
}
