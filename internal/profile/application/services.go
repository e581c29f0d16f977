package application

import (
	"context"

	"github.com/mypetvenues/services/api/internal/profile/domain"
)

// UserRepository abstracts access to the single managed user record.
type UserRepository interface {
	Current(ctx context.Context) (domain.User, error)
	Replace(ctx context.Context, user domain.User) error
	AddFavorite(ctx context.Context, venueID int) (domain.User, error)
	RemoveFavorite(ctx context.Context, venueID int) (domain.User, error)
}

// ProfileService describes profile use-cases. Favorite mutations return the
// updated record so callers can re-render without a second read.
type ProfileService interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	Replace(ctx context.Context, user domain.User) error
	AddFavorite(ctx context.Context, venueID int) (domain.User, error)
	RemoveFavorite(ctx context.Context, venueID int) (domain.User, error)
}

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	repo UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo UserRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) CurrentUser(ctx context.Context) (domain.User, error) {
	return s.repo.Current(ctx)
}

// Replace overwrites the managed record wholesale, last writer wins.
func (s *profileService) Replace(ctx context.Context, user domain.User) error {
	return s.repo.Replace(ctx, user)
}

func (s *profileService) AddFavorite(ctx context.Context, venueID int) (domain.User, error) {
	return s.repo.AddFavorite(ctx, venueID)
}

func (s *profileService) RemoveFavorite(ctx context.Context, venueID int) (domain.User, error) {
	return s.repo.RemoveFavorite(ctx, venueID)
}
