package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVenueType(t *testing.T) {
	venueType, ok := ParseVenueType("park")
	require.True(t, ok)
	assert.Equal(t, VenueTypePark, venueType)

	_, ok = ParseVenueType("arcade")
	assert.False(t, ok)
}

func TestParsePetType(t *testing.T) {
	petType, ok := ParsePetType("small_pet")
	require.True(t, ok)
	assert.Equal(t, PetTypeSmallPet, petType)

	_, ok = ParsePetType("dragon")
	assert.False(t, ok)
}

func TestAllowsPet(t *testing.T) {
	venue := Venue{AllowedPets: []PetType{PetTypeDog, PetTypeCat}}
	assert.True(t, venue.AllowsPet(PetTypeDog))
	assert.False(t, venue.AllowsPet(PetTypeBird))

	wildcard := Venue{AllowedPets: []PetType{PetTypeAll}}
	assert.True(t, wildcard.AllowsPet(PetTypeBird))
	assert.True(t, wildcard.AllowsPet(PetTypeRabbit))
}
