package memory

import (
	"context"

	"github.com/mypetvenues/services/api/internal/catalog/domain"
)

// ReviewRepository implements application.ReviewRepository over an in-memory
// slice seeded at construction. Reviews are immutable after seeding.
type ReviewRepository struct {
	reviews []domain.Review
}

// NewReviewRepository creates a review repository seeded with the given
// reviews, preserving seed order.
func NewReviewRepository(reviews []domain.Review) *ReviewRepository {
	return &ReviewRepository{reviews: append([]domain.Review(nil), reviews...)}
}

// FindByVenue returns all reviews for the venue in seed order. An unknown
// venue yields an empty slice.
func (r *ReviewRepository) FindByVenue(_ context.Context, venueID int) ([]domain.Review, error) {
	results := make([]domain.Review, 0)
	for _, review := range r.reviews {
		if review.VenueID == venueID {
			results = append(results, review)
		}
	}
	return results, nil
}
