package domain

import (
	"errors"
	"time"
)

// ErrInvalidTransition signals a status change the transition table forbids.
var ErrInvalidTransition = errors.New("invalid status transition")

// BookingStatus tracks the lifecycle of a reservation.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingStatuses lists every booking state in declaration order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// ParseBookingStatus maps a raw string onto a known booking state.
func ParseBookingStatus(value string) (BookingStatus, bool) {
	for _, s := range BookingStatuses {
		if string(s) == value {
			return s, true
		}
	}
	return "", false
}

// CanTransitionTo reports whether the transition table allows moving from the
// current state to target. Cancelled and Completed are terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCancelled || target == BookingStatusCompleted
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// Booking is a single reservation in the ledger. UserID and VenueID are
// foreign-key style references into the profile and catalog stores.
type Booking struct {
	ID           int
	UserID       int
	VenueID      int
	Date         time.Time
	TimeSlot     string
	NumberOfPets int
	Notes        string
	Status       BookingStatus
}
