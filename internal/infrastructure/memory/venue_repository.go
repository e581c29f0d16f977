package memory

import (
	"context"
	"strings"

	"github.com/mypetvenues/services/api/internal/catalog/application"
	"github.com/mypetvenues/services/api/internal/catalog/domain"
)

// VenueRepository implements application.VenueRepository over an in-memory
// slice seeded at construction. The catalogue is fixed in cardinality for the
// lifetime of the process, so reads need no locking.
type VenueRepository struct {
	venues []domain.Venue
}

// NewVenueRepository creates a venue repository seeded with the given
// catalogue, preserving seed order.
func NewVenueRepository(venues []domain.Venue) *VenueRepository {
	return &VenueRepository{venues: append([]domain.Venue(nil), venues...)}
}

// Find returns venues matching the filter in seed order. All criteria compose
// with logical AND; zero-value criteria are no-ops.
func (r *VenueRepository) Find(_ context.Context, filter application.VenueFilter) ([]domain.Venue, error) {
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))

	results := make([]domain.Venue, 0, len(r.venues))
	for _, venue := range r.venues {
		if keyword != "" && !matchesKeyword(venue, keyword) {
			continue
		}
		if filter.Type != "" && venue.Type != filter.Type {
			continue
		}
		if filter.Pet != "" && filter.Pet != domain.PetTypeAll && !venue.AllowsPet(filter.Pet) {
			continue
		}
		results = append(results, venue)
	}
	return results, nil
}

// FindByID returns the venue with the given id, or nil when no such venue
// exists. A miss is a normal outcome, not an error.
func (r *VenueRepository) FindByID(_ context.Context, id int) (*domain.Venue, error) {
	for _, venue := range r.venues {
		if venue.ID == id {
			found := venue
			return &found, nil
		}
	}
	return nil, nil
}

// FindFeatured returns the featured subset of the catalogue in seed order.
func (r *VenueRepository) FindFeatured(_ context.Context) ([]domain.Venue, error) {
	results := make([]domain.Venue, 0, len(r.venues))
	for _, venue := range r.venues {
		if venue.Featured {
			results = append(results, venue)
		}
	}
	return results, nil
}

// Count reports the catalogue size, used by the health endpoint.
func (r *VenueRepository) Count() int {
	return len(r.venues)
}

// matchesKeyword reports whether the lower-cased keyword occurs in the
// venue's name, description, or city. Substring match, not tokenized.
func matchesKeyword(venue domain.Venue, keyword string) bool {
	return strings.Contains(strings.ToLower(venue.Name), keyword) ||
		strings.Contains(strings.ToLower(venue.Description), keyword) ||
		strings.Contains(strings.ToLower(venue.City), keyword)
}
