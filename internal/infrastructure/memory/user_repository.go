package memory

import (
	"context"
	"sync"

	bookingdomain "github.com/mypetvenues/services/api/internal/booking/domain"
	"github.com/mypetvenues/services/api/internal/profile/domain"
)

// UserRepository implements application.UserRepository over a single mutable
// record. A mutex keeps replace and favorite mutations sequentially
// consistent under concurrent HTTP handlers.
type UserRepository struct {
	mu   sync.Mutex
	user domain.User
}

// NewUserRepository creates a user repository seeded with the given record.
func NewUserRepository(user domain.User) *UserRepository {
	return &UserRepository{user: cloneUser(user)}
}

// Current returns a copy of the managed record.
func (r *UserRepository) Current(_ context.Context) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneUser(r.user), nil
}

// Replace overwrites the managed record wholesale.
func (r *UserRepository) Replace(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = cloneUser(user)
	return nil
}

// AddFavorite inserts the venue id only if absent, preserving insertion order
// of existing entries, and returns the updated record.
func (r *UserRepository) AddFavorite(_ context.Context, venueID int) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.user.FavoriteVenueIDs {
		if id == venueID {
			return cloneUser(r.user), nil
		}
	}
	r.user.FavoriteVenueIDs = append(r.user.FavoriteVenueIDs, venueID)
	return cloneUser(r.user), nil
}

// RemoveFavorite removes the venue id if present. An absent id is a no-op.
func (r *UserRepository) RemoveFavorite(_ context.Context, venueID int) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	favorites := r.user.FavoriteVenueIDs[:0]
	for _, id := range r.user.FavoriteVenueIDs {
		if id != venueID {
			favorites = append(favorites, id)
		}
	}
	r.user.FavoriteVenueIDs = favorites
	return cloneUser(r.user), nil
}

// cloneUser deep-copies the record so callers never share slices with the
// repository's internal state.
func cloneUser(user domain.User) domain.User {
	clone := user
	clone.Pets = append([]domain.Pet(nil), user.Pets...)
	clone.FavoriteVenueIDs = append([]int(nil), user.FavoriteVenueIDs...)
	clone.Bookings = append([]bookingdomain.Booking(nil), user.Bookings...)
	return clone
}
