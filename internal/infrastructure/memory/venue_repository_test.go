package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypetvenues/services/api/internal/catalog/application"
	"github.com/mypetvenues/services/api/internal/catalog/domain"
	"github.com/mypetvenues/services/api/internal/infrastructure/seed"
)

func seededVenueRepository() *VenueRepository {
	return NewVenueRepository(seed.Default().Venues)
}

func TestVenueFind_NoFilterReturnsAllInSeedOrder(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.Find(context.Background(), application.VenueFilter{})
	require.NoError(t, err)
	require.Len(t, venues, 6)

	for i, venue := range venues {
		assert.Equal(t, i+1, venue.ID)
	}
}

func TestVenueFind_KeywordIsCaseInsensitive(t *testing.T) {
	repo := seededVenueRepository()

	lower, err := repo.Find(context.Background(), application.VenueFilter{Keyword: "pawsome"})
	require.NoError(t, err)
	upper, err := repo.Find(context.Background(), application.VenueFilter{Keyword: "PAWSOME"})
	require.NoError(t, err)

	require.Len(t, lower, 1)
	assert.Equal(t, "Pawsome Park", lower[0].Name)
	assert.Equal(t, lower, upper)
}

func TestVenueFind_KeywordMatchesCity(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.Find(context.Background(), application.VenueFilter{Keyword: "seattle"})
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, 1, venues[0].ID)
}

func TestVenueFind_TypeFilter(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.Find(context.Background(), application.VenueFilter{Type: domain.VenueTypeCafe})
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Bark & Brew Café", venues[0].Name)
}

func TestVenueFind_PetFilterAllIsNoOp(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.Find(context.Background(), application.VenueFilter{Pet: domain.PetTypeAll})
	require.NoError(t, err)
	assert.Len(t, venues, 6)
}

func TestVenueFind_PetFilterHonoursWildcardVenues(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.Find(context.Background(), application.VenueFilter{Pet: domain.PetTypeDog})
	require.NoError(t, err)

	ids := make([]int, 0, len(venues))
	for _, venue := range venues {
		ids = append(ids, venue.ID)
	}
	// Venue 3 and 5 admit every pet type and must survive a dog filter.
	assert.Contains(t, ids, 3)
	assert.Contains(t, ids, 5)
	assert.Len(t, ids, 6)
}

func TestVenueFind_PetFilterExcludesNonMatching(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.Find(context.Background(), application.VenueFilter{Pet: domain.PetTypeBird})
	require.NoError(t, err)

	for _, venue := range venues {
		assert.True(t, venue.AllowsPet(domain.PetTypeBird), "venue %d should allow birds", venue.ID)
	}
	// Only the wildcard venues admit birds in the seed catalogue.
	require.Len(t, venues, 2)
}

func TestVenueFind_FiltersCompose(t *testing.T) {
	repo := seededVenueRepository()

	// The keyword alone matches several venues; adding the type filter must
	// narrow the result to their intersection.
	broad, err := repo.Find(context.Background(), application.VenueFilter{Keyword: "pet"})
	require.NoError(t, err)
	require.Greater(t, len(broad), 1)

	venues, err := repo.Find(context.Background(), application.VenueFilter{
		Keyword: "pet",
		Type:    domain.VenueTypeBeach,
	})
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Pet Paradise Beach", venues[0].Name)
}

func TestVenueFindByID_MissIsNilNotError(t *testing.T) {
	repo := seededVenueRepository()

	venue, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, venue)
}

func TestVenueFindByID_ReturnsMatch(t *testing.T) {
	repo := seededVenueRepository()

	venue, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, venue)
	assert.Equal(t, "Furry Friends Hotel", venue.Name)
}

func TestVenueFindFeatured(t *testing.T) {
	repo := seededVenueRepository()

	venues, err := repo.FindFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 3)
	for _, venue := range venues {
		assert.True(t, venue.Featured)
	}
}

func TestVenueCount(t *testing.T) {
	repo := seededVenueRepository()
	assert.Equal(t, 6, repo.Count())
}
