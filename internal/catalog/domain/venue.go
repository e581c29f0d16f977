package domain

// VenueType classifies a venue by the kind of service it offers.
type VenueType string

const (
	VenueTypePark       VenueType = "park"
	VenueTypeRestaurant VenueType = "restaurant"
	VenueTypeCafe       VenueType = "cafe"
	VenueTypeHotel      VenueType = "hotel"
	VenueTypeStore      VenueType = "store"
	VenueTypeBeach      VenueType = "beach"
	VenueTypeDayCare    VenueType = "day_care"
	VenueTypeGrooming   VenueType = "grooming"
	VenueTypeVetClinic  VenueType = "vet_clinic"
)

// VenueTypes lists every known venue category in declaration order.
var VenueTypes = []VenueType{
	VenueTypePark,
	VenueTypeRestaurant,
	VenueTypeCafe,
	VenueTypeHotel,
	VenueTypeStore,
	VenueTypeBeach,
	VenueTypeDayCare,
	VenueTypeGrooming,
	VenueTypeVetClinic,
}

// ParseVenueType maps a raw string onto a known venue category.
func ParseVenueType(value string) (VenueType, bool) {
	for _, t := range VenueTypes {
		if string(t) == value {
			return t, true
		}
	}
	return "", false
}

// PetType classifies the animals a venue admits. PetTypeAll is a wildcard
// matching every specific category in filter logic.
type PetType string

const (
	PetTypeDog      PetType = "dog"
	PetTypeCat      PetType = "cat"
	PetTypeBird     PetType = "bird"
	PetTypeRabbit   PetType = "rabbit"
	PetTypeSmallPet PetType = "small_pet"
	PetTypeAll      PetType = "all"
)

// PetTypes lists every known pet category in declaration order.
var PetTypes = []PetType{
	PetTypeDog,
	PetTypeCat,
	PetTypeBird,
	PetTypeRabbit,
	PetTypeSmallPet,
	PetTypeAll,
}

// ParsePetType maps a raw string onto a known pet category.
func ParsePetType(value string) (PetType, bool) {
	for _, t := range PetTypes {
		if string(t) == value {
			return t, true
		}
	}
	return "", false
}

// Venue represents a catalogued pet-friendly location.
type Venue struct {
	ID           int
	Name         string
	Description  string
	Address      string
	City         string
	ImageURL     string
	Rating       float64
	ReviewCount  int
	Type         VenueType
	AllowedPets  []PetType
	Amenities    []string
	OpeningHours map[string]string
	Featured     bool
	ContactPhone string
	Website      string
}

// AllowsPet reports whether the venue admits the given pet category. A venue
// whose allowed-pets set contains the wildcard admits every category.
func (v Venue) AllowsPet(pet PetType) bool {
	for _, allowed := range v.AllowedPets {
		if allowed == PetTypeAll || allowed == pet {
			return true
		}
	}
	return false
}
