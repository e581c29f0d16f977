package public

import (
	"time"

	bookingdomain "github.com/mypetvenues/services/api/internal/booking/domain"
	catalogdomain "github.com/mypetvenues/services/api/internal/catalog/domain"
	profiledomain "github.com/mypetvenues/services/api/internal/profile/domain"
)

type venueResponse struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	ImageURL     string            `json:"imageUrl"`
	Rating       float64           `json:"rating"`
	ReviewCount  int               `json:"reviewCount"`
	Type         string            `json:"type"`
	AllowedPets  []string          `json:"allowedPets"`
	Amenities    []string          `json:"amenities"`
	OpeningHours map[string]string `json:"openingHours"`
	IsFeatured   bool              `json:"isFeatured"`
	ContactPhone string            `json:"contactPhone"`
	Website      string            `json:"website"`
}

type venueListResponse struct {
	Items []venueResponse `json:"items"`
	Total int             `json:"total"`
}

type reviewResponse struct {
	ID        int     `json:"id"`
	VenueID   int     `json:"venueId"`
	UserID    int     `json:"userId"`
	UserName  string  `json:"userName"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	VisitDate string  `json:"visitDate"`
	PetName   string  `json:"petName"`
}

type reviewListResponse struct {
	Items []reviewResponse `json:"items"`
	Total int              `json:"total"`
}

type petPayload struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
	ImageURL string `json:"imageUrl"`
}

type userResponse struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	ProfileImageURL  string            `json:"profileImageUrl"`
	Pets             []petPayload      `json:"pets"`
	FavoriteVenueIDs []int             `json:"favoriteVenueIds"`
	Bookings         []bookingResponse `json:"bookings"`
}

type bookingResponse struct {
	ID           int    `json:"id"`
	UserID       int    `json:"userId"`
	VenueID      int    `json:"venueId"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	NumberOfPets int    `json:"numberOfPets"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

type bookingListResponse struct {
	Items []bookingResponse `json:"items"`
	Total int               `json:"total"`
}

type themeResponse struct {
	DarkMode bool `json:"darkMode"`
}

func buildVenueResponse(venue catalogdomain.Venue) venueResponse {
	allowed := make([]string, 0, len(venue.AllowedPets))
	for _, pet := range venue.AllowedPets {
		allowed = append(allowed, string(pet))
	}

	hours := make(map[string]string, len(venue.OpeningHours))
	for day, span := range venue.OpeningHours {
		hours[day] = span
	}

	return venueResponse{
		ID:           venue.ID,
		Name:         venue.Name,
		Description:  venue.Description,
		Address:      venue.Address,
		City:         venue.City,
		ImageURL:     venue.ImageURL,
		Rating:       venue.Rating,
		ReviewCount:  venue.ReviewCount,
		Type:         string(venue.Type),
		AllowedPets:  allowed,
		Amenities:    append([]string{}, venue.Amenities...),
		OpeningHours: hours,
		IsFeatured:   venue.Featured,
		ContactPhone: venue.ContactPhone,
		Website:      venue.Website,
	}
}

func buildVenueListResponse(venues []catalogdomain.Venue) venueListResponse {
	items := make([]venueResponse, 0, len(venues))
	for _, venue := range venues {
		items = append(items, buildVenueResponse(venue))
	}
	return venueListResponse{Items: items, Total: len(items)}
}

func buildReviewResponse(review catalogdomain.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID,
		VenueID:   review.VenueID,
		UserID:    review.UserID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		VisitDate: review.VisitDate.Format(time.RFC3339),
		PetName:   review.PetName,
	}
}

func buildUserResponse(user profiledomain.User) userResponse {
	pets := make([]petPayload, 0, len(user.Pets))
	for _, pet := range user.Pets {
		pets = append(pets, petPayload{
			Name:     pet.Name,
			Type:     string(pet.Type),
			Breed:    pet.Breed,
			Age:      pet.Age,
			ImageURL: pet.ImageURL,
		})
	}

	bookings := make([]bookingResponse, 0, len(user.Bookings))
	for _, booking := range user.Bookings {
		bookings = append(bookings, buildBookingResponse(booking))
	}

	return userResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		ProfileImageURL:  user.ProfileImageURL,
		Pets:             pets,
		FavoriteVenueIDs: append([]int{}, user.FavoriteVenueIDs...),
		Bookings:         bookings,
	}
}

func buildBookingResponse(booking bookingdomain.Booking) bookingResponse {
	return bookingResponse{
		ID:           booking.ID,
		UserID:       booking.UserID,
		VenueID:      booking.VenueID,
		Date:         booking.Date.Format(time.RFC3339),
		TimeSlot:     booking.TimeSlot,
		NumberOfPets: booking.NumberOfPets,
		Notes:        booking.Notes,
		Status:       string(booking.Status),
	}
}

func buildBookingListResponse(bookings []bookingdomain.Booking) bookingListResponse {
	items := make([]bookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, buildBookingResponse(booking))
	}
	return bookingListResponse{Items: items, Total: len(items)}
}
