package domain

import "time"

// Review is a visitor-submitted rating for a venue. VenueID and UserID are
// foreign-key style references; UserName and PetName are denormalized for
// display.
type Review struct {
	ID        int
	VenueID   int
	UserID    int
	UserName  string
	Rating    float64
	Comment   string
	VisitDate time.Time
	PetName   string
}
