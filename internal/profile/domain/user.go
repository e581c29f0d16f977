package domain

import (
	bookingdomain "github.com/mypetvenues/services/api/internal/booking/domain"
	catalogdomain "github.com/mypetvenues/services/api/internal/catalog/domain"
)

// Pet is an animal owned by the current user.
type Pet struct {
	Name     string
	Type     catalogdomain.PetType
	Breed    string
	Age      int
	ImageURL string
}

// User is the single managed profile record. FavoriteVenueIDs is an ordered,
// de-duplicated list of venue ids. Bookings is part of the payload shape but
// is never populated; the ledger repository is the single source of truth,
// keyed by UserID.
type User struct {
	ID               int
	Name             string
	Email            string
	ProfileImageURL  string
	Pets             []Pet
	FavoriteVenueIDs []int
	Bookings         []bookingdomain.Booking
}
