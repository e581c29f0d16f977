package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	bookingdomain "github.com/mypetvenues/services/api/internal/booking/domain"
	catalogdomain "github.com/mypetvenues/services/api/internal/catalog/domain"
	profiledomain "github.com/mypetvenues/services/api/internal/profile/domain"
)

// dataDocument is the on-disk TOML shape of a dataset. Enumerations travel as
// strings and are validated against the domain on load.
type dataDocument struct {
	Venues   []venueDocument   `toml:"venues"`
	Reviews  []reviewDocument  `toml:"reviews"`
	User     userDocument      `toml:"user"`
	Bookings []bookingDocument `toml:"bookings"`
}

type venueDocument struct {
	ID           int               `toml:"id"`
	Name         string            `toml:"name"`
	Description  string            `toml:"description"`
	Address      string            `toml:"address"`
	City         string            `toml:"city"`
	ImageURL     string            `toml:"image_url"`
	Rating       float64           `toml:"rating"`
	ReviewCount  int               `toml:"review_count"`
	Type         string            `toml:"type"`
	AllowedPets  []string          `toml:"allowed_pets"`
	Amenities    []string          `toml:"amenities"`
	OpeningHours map[string]string `toml:"opening_hours"`
	Featured     bool              `toml:"featured"`
	ContactPhone string            `toml:"contact_phone"`
	Website      string            `toml:"website"`
}

type reviewDocument struct {
	ID        int       `toml:"id"`
	VenueID   int       `toml:"venue_id"`
	UserID    int       `toml:"user_id"`
	UserName  string    `toml:"user_name"`
	Rating    float64   `toml:"rating"`
	Comment   string    `toml:"comment"`
	VisitDate time.Time `toml:"visit_date"`
	PetName   string    `toml:"pet_name"`
}

type userDocument struct {
	ID               int           `toml:"id"`
	Name             string        `toml:"name"`
	Email            string        `toml:"email"`
	ProfileImageURL  string        `toml:"profile_image_url"`
	Pets             []petDocument `toml:"pets"`
	FavoriteVenueIDs []int         `toml:"favorite_venue_ids"`
}

type petDocument struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Breed    string `toml:"breed"`
	Age      int    `toml:"age"`
	ImageURL string `toml:"image_url"`
}

type bookingDocument struct {
	ID           int       `toml:"id"`
	UserID       int       `toml:"user_id"`
	VenueID      int       `toml:"venue_id"`
	Date         time.Time `toml:"date"`
	TimeSlot     string    `toml:"time_slot"`
	NumberOfPets int       `toml:"number_of_pets"`
	Notes        string    `toml:"notes"`
	Status       string    `toml:"status"`
}

// Load reads a TOML seed file and maps it onto the domain, validating every
// enumeration value.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}

	var doc dataDocument
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return Data{}, fmt.Errorf("parse seed file: %w", err)
	}

	return mapDataDocument(doc)
}

// Encode serializes a dataset to TOML in the same shape Load accepts.
func Encode(data Data) ([]byte, error) {
	return toml.Marshal(buildDataDocument(data))
}

func mapDataDocument(doc dataDocument) (Data, error) {
	data := Data{
		Venues:   make([]catalogdomain.Venue, 0, len(doc.Venues)),
		Reviews:  make([]catalogdomain.Review, 0, len(doc.Reviews)),
		Bookings: make([]bookingdomain.Booking, 0, len(doc.Bookings)),
	}

	seenVenueIDs := make(map[int]struct{}, len(doc.Venues))
	for _, v := range doc.Venues {
		venue, err := mapVenueDocument(v)
		if err != nil {
			return Data{}, err
		}
		if _, dup := seenVenueIDs[venue.ID]; dup {
			return Data{}, fmt.Errorf("venue %d: duplicate id", venue.ID)
		}
		seenVenueIDs[venue.ID] = struct{}{}
		data.Venues = append(data.Venues, venue)
	}

	for _, r := range doc.Reviews {
		data.Reviews = append(data.Reviews, catalogdomain.Review{
			ID:        r.ID,
			VenueID:   r.VenueID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			VisitDate: r.VisitDate,
			PetName:   r.PetName,
		})
	}

	user, err := mapUserDocument(doc.User)
	if err != nil {
		return Data{}, err
	}
	data.User = user

	for _, b := range doc.Bookings {
		status, ok := bookingdomain.ParseBookingStatus(b.Status)
		if !ok {
			return Data{}, fmt.Errorf("booking %d: unknown status %q", b.ID, b.Status)
		}
		data.Bookings = append(data.Bookings, bookingdomain.Booking{
			ID:           b.ID,
			UserID:       b.UserID,
			VenueID:      b.VenueID,
			Date:         b.Date,
			TimeSlot:     b.TimeSlot,
			NumberOfPets: b.NumberOfPets,
			Notes:        b.Notes,
			Status:       status,
		})
	}

	return data, nil
}

func mapVenueDocument(doc venueDocument) (catalogdomain.Venue, error) {
	venueType, ok := catalogdomain.ParseVenueType(doc.Type)
	if !ok {
		return catalogdomain.Venue{}, fmt.Errorf("venue %d: unknown type %q", doc.ID, doc.Type)
	}

	allowed := make([]catalogdomain.PetType, 0, len(doc.AllowedPets))
	for _, raw := range doc.AllowedPets {
		pet, ok := catalogdomain.ParsePetType(raw)
		if !ok {
			return catalogdomain.Venue{}, fmt.Errorf("venue %d: unknown pet category %q", doc.ID, raw)
		}
		allowed = append(allowed, pet)
	}

	return catalogdomain.Venue{
		ID:           doc.ID,
		Name:         doc.Name,
		Description:  doc.Description,
		Address:      doc.Address,
		City:         doc.City,
		ImageURL:     doc.ImageURL,
		Rating:       doc.Rating,
		ReviewCount:  doc.ReviewCount,
		Type:         venueType,
		AllowedPets:  allowed,
		Amenities:    append([]string{}, doc.Amenities...),
		OpeningHours: doc.OpeningHours,
		Featured:     doc.Featured,
		ContactPhone: doc.ContactPhone,
		Website:      doc.Website,
	}, nil
}

func mapUserDocument(doc userDocument) (profiledomain.User, error) {
	pets := make([]profiledomain.Pet, 0, len(doc.Pets))
	for _, p := range doc.Pets {
		petType, ok := catalogdomain.ParsePetType(p.Type)
		if !ok {
			return profiledomain.User{}, fmt.Errorf("pet %q: unknown category %q", p.Name, p.Type)
		}
		pets = append(pets, profiledomain.Pet{
			Name:     p.Name,
			Type:     petType,
			Breed:    p.Breed,
			Age:      p.Age,
			ImageURL: p.ImageURL,
		})
	}

	return profiledomain.User{
		ID:               doc.ID,
		Name:             doc.Name,
		Email:            doc.Email,
		ProfileImageURL:  doc.ProfileImageURL,
		Pets:             pets,
		FavoriteVenueIDs: append([]int{}, doc.FavoriteVenueIDs...),
	}, nil
}

func buildDataDocument(data Data) dataDocument {
	doc := dataDocument{
		Venues:   make([]venueDocument, 0, len(data.Venues)),
		Reviews:  make([]reviewDocument, 0, len(data.Reviews)),
		Bookings: make([]bookingDocument, 0, len(data.Bookings)),
	}

	for _, v := range data.Venues {
		allowed := make([]string, 0, len(v.AllowedPets))
		for _, pet := range v.AllowedPets {
			allowed = append(allowed, string(pet))
		}
		doc.Venues = append(doc.Venues, venueDocument{
			ID:           v.ID,
			Name:         v.Name,
			Description:  v.Description,
			Address:      v.Address,
			City:         v.City,
			ImageURL:     v.ImageURL,
			Rating:       v.Rating,
			ReviewCount:  v.ReviewCount,
			Type:         string(v.Type),
			AllowedPets:  allowed,
			Amenities:    append([]string{}, v.Amenities...),
			OpeningHours: v.OpeningHours,
			Featured:     v.Featured,
			ContactPhone: v.ContactPhone,
			Website:      v.Website,
		})
	}

	for _, r := range data.Reviews {
		doc.Reviews = append(doc.Reviews, reviewDocument{
			ID:        r.ID,
			VenueID:   r.VenueID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			VisitDate: r.VisitDate,
			PetName:   r.PetName,
		})
	}

	pets := make([]petDocument, 0, len(data.User.Pets))
	for _, p := range data.User.Pets {
		pets = append(pets, petDocument{
			Name:     p.Name,
			Type:     string(p.Type),
			Breed:    p.Breed,
			Age:      p.Age,
			ImageURL: p.ImageURL,
		})
	}
	doc.User = userDocument{
		ID:               data.User.ID,
		Name:             data.User.Name,
		Email:            data.User.Email,
		ProfileImageURL:  data.User.ProfileImageURL,
		Pets:             pets,
		FavoriteVenueIDs: append([]int{}, data.User.FavoriteVenueIDs...),
	}

	for _, b := range data.Bookings {
		doc.Bookings = append(doc.Bookings, bookingDocument{
			ID:           b.ID,
			UserID:       b.UserID,
			VenueID:      b.VenueID,
			Date:         b.Date,
			TimeSlot:     b.TimeSlot,
			NumberOfPets: b.NumberOfPets,
			Notes:        b.Notes,
			Status:       string(b.Status),
		})
	}

	return doc
}
