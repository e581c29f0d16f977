package application

import (
	"context"

	"github.com/mypetvenues/services/api/internal/catalog/domain"
)

// VenueRepository abstracts read access to the venue catalogue.
type VenueRepository interface {
	Find(ctx context.Context, filter VenueFilter) ([]domain.Venue, error)
	FindByID(ctx context.Context, id int) (*domain.Venue, error)
	FindFeatured(ctx context.Context) ([]domain.Venue, error)
}

// ReviewRepository abstracts read access to venue reviews.
type ReviewRepository interface {
	FindByVenue(ctx context.Context, venueID int) ([]domain.Review, error)
}

// VenueFilter expresses search criteria for venues. Zero values are no-ops;
// a Pet value equal to the wildcard category is also a no-op.
type VenueFilter struct {
	Keyword string
	Type    domain.VenueType
	Pet     domain.PetType
}

// VenueQueryService describes catalogue read use-cases.
type VenueQueryService interface {
	List(ctx context.Context) ([]domain.Venue, error)
	Detail(ctx context.Context, id int) (*domain.Venue, error)
	Featured(ctx context.Context) ([]domain.Venue, error)
	Search(ctx context.Context, filter VenueFilter) ([]domain.Venue, error)
	Reviews(ctx context.Context, venueID int) ([]domain.Review, error)
}

// venueQueryService is the concrete implementation of VenueQueryService.
type venueQueryService struct {
	venues  VenueRepository
	reviews ReviewRepository
}

// NewVenueQueryService creates a new catalogue query service.
func NewVenueQueryService(venues VenueRepository, reviews ReviewRepository) VenueQueryService {
	return &venueQueryService{venues: venues, reviews: reviews}
}

func (s *venueQueryService) List(ctx context.Context) ([]domain.Venue, error) {
	return s.venues.Find(ctx, VenueFilter{})
}

func (s *venueQueryService) Detail(ctx context.Context, id int) (*domain.Venue, error) {
	return s.venues.FindByID(ctx, id)
}

func (s *venueQueryService) Featured(ctx context.Context) ([]domain.Venue, error) {
	return s.venues.FindFeatured(ctx)
}

func (s *venueQueryService) Search(ctx context.Context, filter VenueFilter) ([]domain.Venue, error) {
	return s.venues.Find(ctx, filter)
}

func (s *venueQueryService) Reviews(ctx context.Context, venueID int) ([]domain.Review, error) {
	return s.reviews.FindByVenue(ctx, venueID)
}
