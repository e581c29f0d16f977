package common

import (
	"strings"

	"github.com/mypetvenues/services/api/internal/catalog/domain"
)

// CanonicalVenueType normalises query-string aliases onto a known venue
// category. An empty input is accepted and means "no filter".
func CanonicalVenueType(input string) (domain.VenueType, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return "", true
	}

	switch trimmed {
	case "daycare", "day-care":
		return domain.VenueTypeDayCare, true
	case "vet", "vetclinic", "vet-clinic", "clinic":
		return domain.VenueTypeVetClinic, true
	case "café", "coffee":
		return domain.VenueTypeCafe, true
	case "shop":
		return domain.VenueTypeStore, true
	}

	return domain.ParseVenueType(trimmed)
}

// CanonicalPetType normalises query-string aliases onto a known pet category.
// An empty input is accepted and means "no filter".
func CanonicalPetType(input string) (domain.PetType, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return "", true
	}

	switch trimmed {
	case "smallpet", "small-pet", "small":
		return domain.PetTypeSmallPet, true
	case "any", "*":
		return domain.PetTypeAll, true
	}

	return domain.ParsePetType(trimmed)
}
