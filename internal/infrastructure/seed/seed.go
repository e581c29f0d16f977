package seed

import (
	"time"

	bookingdomain "github.com/mypetvenues/services/api/internal/booking/domain"
	catalogdomain "github.com/mypetvenues/services/api/internal/catalog/domain"
	profiledomain "github.com/mypetvenues/services/api/internal/profile/domain"
)

// Data is the complete dataset the repositories are constructed from.
type Data struct {
	Venues   []catalogdomain.Venue
	Reviews  []catalogdomain.Review
	User     profiledomain.User
	Bookings []bookingdomain.Booking
}

// Default returns the built-in demo dataset: 6 venues, 8 reviews, 1 user with
// 2 pets, and 2 bookings. Dates are relative to process start so the data
// always looks current.
func Default() Data {
	now := time.Now()
	return Data{
		Venues:   defaultVenues(),
		Reviews:  defaultReviews(now),
		User:     defaultUser(),
		Bookings: defaultBookings(now),
	}
}

func defaultVenues() []catalogdomain.Venue {
	return []catalogdomain.Venue{
		{
			ID:          1,
			Name:        "Pawsome Park",
			Description: "A spacious dog park with separate areas for small and large breeds. Features include agility equipment, water fountains, and shaded seating areas.",
			Address:     "123 Bark Avenue",
			City:        "Seattle",
			ImageURL:    "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=800",
			Rating:      4.8,
			ReviewCount: 156,
			Type:        catalogdomain.VenueTypePark,
			AllowedPets: []catalogdomain.PetType{
				catalogdomain.PetTypeDog,
				catalogdomain.PetTypeCat,
				catalogdomain.PetTypeSmallPet,
			},
			Amenities: []string{"Off-leash area", "Water fountains", "Agility equipment", "Waste stations", "Shade structures"},
			OpeningHours: map[string]string{
				"Monday":    "6:00 AM - 9:00 PM",
				"Tuesday":   "6:00 AM - 9:00 PM",
				"Wednesday": "6:00 AM - 9:00 PM",
				"Thursday":  "6:00 AM - 9:00 PM",
				"Friday":    "6:00 AM - 9:00 PM",
				"Saturday":  "6:00 AM - 10:00 PM",
				"Sunday":    "6:00 AM - 10:00 PM",
			},
			Featured:     true,
			ContactPhone: "(206) 555-0101",
			Website:      "https://pawsomepark.example.com",
		},
		{
			ID:          2,
			Name:        "Bark & Brew Café",
			Description: "Pet-friendly café serving artisan coffee, fresh pastries, and special treats for your furry friends. Indoor and outdoor seating available.",
			Address:     "456 Woof Street",
			City:        "Portland",
			ImageURL:    "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800",
			Rating:      4.7,
			ReviewCount: 89,
			Type:        catalogdomain.VenueTypeCafe,
			AllowedPets: []catalogdomain.PetType{
				catalogdomain.PetTypeDog,
				catalogdomain.PetTypeCat,
			},
			Amenities: []string{"Pet treats", "Water bowls", "Outdoor patio", "WiFi", "Pet photo wall"},
			OpeningHours: map[string]string{
				"Monday":    "7:00 AM - 7:00 PM",
				"Tuesday":   "7:00 AM - 7:00 PM",
				"Wednesday": "7:00 AM - 7:00 PM",
				"Thursday":  "7:00 AM - 7:00 PM",
				"Friday":    "7:00 AM - 8:00 PM",
				"Saturday":  "8:00 AM - 8:00 PM",
				"Sunday":    "8:00 AM - 6:00 PM",
			},
			Featured:     true,
			ContactPhone: "(503) 555-0202",
			Website:      "https://barkbrew.example.com",
		},
		{
			ID:          3,
			Name:        "Furry Friends Hotel",
			Description: "Luxury pet-friendly hotel with spacious suites, grooming services, and 24/7 pet concierge. Your pets will feel right at home!",
			Address:     "789 Pet Paradise Lane",
			City:        "San Francisco",
			ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			Rating:      4.9,
			ReviewCount: 234,
			Type:        catalogdomain.VenueTypeHotel,
			AllowedPets: []catalogdomain.PetType{catalogdomain.PetTypeAll},
			Amenities:   []string{"Pet suites", "Grooming", "Pet menu", "Exercise area", "Pet sitting", "Veterinarian on call"},
			OpeningHours: map[string]string{
				"Monday":    "24/7",
				"Tuesday":   "24/7",
				"Wednesday": "24/7",
				"Thursday":  "24/7",
				"Friday":    "24/7",
				"Saturday":  "24/7",
				"Sunday":    "24/7",
			},
			Featured:     true,
			ContactPhone: "(415) 555-0303",
			Website:      "https://furryfriendshotel.example.com",
		},
		{
			ID:          4,
			Name:        "Pet Paradise Beach",
			Description: "Dog-friendly beach with designated swimming areas, beach toy rentals, and a rinse station. Perfect for a sunny day out!",
			Address:     "321 Ocean Drive",
			City:        "San Diego",
			ImageURL:    "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=800",
			Rating:      4.6,
			ReviewCount: 178,
			Type:        catalogdomain.VenueTypeBeach,
			AllowedPets: []catalogdomain.PetType{catalogdomain.PetTypeDog},
			Amenities:   []string{"Swimming area", "Rinse station", "Beach toys", "Shade umbrellas", "Waste bags"},
			OpeningHours: map[string]string{
				"Monday":    "Sunrise - Sunset",
				"Tuesday":   "Sunrise - Sunset",
				"Wednesday": "Sunrise - Sunset",
				"Thursday":  "Sunrise - Sunset",
				"Friday":    "Sunrise - Sunset",
				"Saturday":  "Sunrise - Sunset",
				"Sunday":    "Sunrise - Sunset",
			},
			Featured:     false,
			ContactPhone: "(619) 555-0404",
			Website:      "https://petparadisebeach.example.com",
		},
		{
			ID:          5,
			Name:        "Whiskers & Wags Store",
			Description: "Premier pet supply store with everything from premium food to designer accessories. Knowledgeable staff and in-store vet consultations.",
			Address:     "654 Pet Supply Way",
			City:        "Austin",
			ImageURL:    "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=800",
			Rating:      4.7,
			ReviewCount: 145,
			Type:        catalogdomain.VenueTypeStore,
			AllowedPets: []catalogdomain.PetType{catalogdomain.PetTypeAll},
			Amenities:   []string{"Wide selection", "Expert advice", "Vet consultations", "Grooming products", "Custom orders"},
			OpeningHours: map[string]string{
				"Monday":    "9:00 AM - 8:00 PM",
				"Tuesday":   "9:00 AM - 8:00 PM",
				"Wednesday": "9:00 AM - 8:00 PM",
				"Thursday":  "9:00 AM - 8:00 PM",
				"Friday":    "9:00 AM - 9:00 PM",
				"Saturday":  "9:00 AM - 9:00 PM",
				"Sunday":    "10:00 AM - 7:00 PM",
			},
			Featured:     false,
			ContactPhone: "(512) 555-0505",
			Website:      "https://whiskersandwags.example.com",
		},
		{
			ID:          6,
			Name:        "Cozy Paws Restaurant",
			Description: "Fine dining restaurant with a pet-friendly patio. Enjoy gourmet meals while your pets relax with complimentary treats and water.",
			Address:     "987 Gourmet Boulevard",
			City:        "Denver",
			ImageURL:    "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800",
			Rating:      4.5,
			ReviewCount: 112,
			Type:        catalogdomain.VenueTypeRestaurant,
			AllowedPets: []catalogdomain.PetType{
				catalogdomain.PetTypeDog,
				catalogdomain.PetTypeCat,
			},
			Amenities: []string{"Pet-friendly patio", "Pet treats", "Water bowls", "Heating lamps", "Pet menu"},
			OpeningHours: map[string]string{
				"Monday":    "Closed",
				"Tuesday":   "5:00 PM - 10:00 PM",
				"Wednesday": "5:00 PM - 10:00 PM",
				"Thursday":  "5:00 PM - 10:00 PM",
				"Friday":    "5:00 PM - 11:00 PM",
				"Saturday":  "11:00 AM - 11:00 PM",
				"Sunday":    "11:00 AM - 9:00 PM",
			},
			Featured:     false,
			ContactPhone: "(303) 555-0606",
			Website:      "https://cozypaws.example.com",
		},
	}
}

func defaultReviews(now time.Time) []catalogdomain.Review {
	return []catalogdomain.Review{
		{
			ID:        1,
			VenueID:   1,
			UserID:    1,
			UserName:  "Sarah Johnson",
			Rating:    5.0,
			Comment:   "Absolutely love this park! My golden retriever Max has made so many friends here. The agility equipment is top-notch and the staff keeps everything spotless.",
			VisitDate: now.AddDate(0, 0, -15),
			PetName:   "Max",
		},
		{
			ID:        2,
			VenueID:   1,
			UserID:    2,
			UserName:  "Michael Chen",
			Rating:    4.5,
			Comment:   "Great park with lots of space. The separate small dog area is perfect for my corgi. Only wish there were more shade structures.",
			VisitDate: now.AddDate(0, 0, -8),
			PetName:   "Luna",
		},
		{
			ID:        3,
			VenueID:   2,
			UserID:    3,
			UserName:  "Emily Rodriguez",
			Rating:    5.0,
			Comment:   "Best pet-friendly café in town! The staff always remembers my pup's name and brings her favorite treats. Coffee is amazing too!",
			VisitDate: now.AddDate(0, 0, -3),
			PetName:   "Bella",
		},
		{
			ID:        4,
			VenueID:   2,
			UserID:    4,
			UserName:  "David Thompson",
			Rating:    4.0,
			Comment:   "Nice atmosphere and good coffee. The outdoor patio is lovely. Gets pretty crowded on weekends though.",
			VisitDate: now.AddDate(0, 0, -20),
			PetName:   "Charlie",
		},
		{
			ID:        5,
			VenueID:   3,
			UserID:    5,
			UserName:  "Jessica Lee",
			Rating:    5.0,
			Comment:   "Stayed here during our vacation and it was incredible! The pet suites are luxurious and the staff went above and beyond for our two cats.",
			VisitDate: now.AddDate(0, 0, -30),
			PetName:   "Whiskers & Mittens",
		},
		{
			ID:        6,
			VenueID:   4,
			UserID:    6,
			UserName:  "Robert Garcia",
			Rating:    4.5,
			Comment:   "Perfect beach for dogs! Mine loved the swimming area. The rinse station is a lifesaver. Could use more parking though.",
			VisitDate: now.AddDate(0, 0, -12),
			PetName:   "Rocky",
		},
		{
			ID:        7,
			VenueID:   5,
			UserID:    7,
			UserName:  "Amanda Martinez",
			Rating:    4.5,
			Comment:   "Excellent selection of products and the staff really knows their stuff. Prices are a bit high but the quality is worth it.",
			VisitDate: now.AddDate(0, 0, -5),
			PetName:   "Fluffy",
		},
		{
			ID:        8,
			VenueID:   6,
			UserID:    8,
			UserName:  "Christopher Brown",
			Rating:    4.0,
			Comment:   "Lovely restaurant with great food. The pet-friendly patio is charming. Service was a bit slow but overall a nice experience.",
			VisitDate: now.AddDate(0, 0, -18),
			PetName:   "Buddy",
		},
	}
}

func defaultUser() profiledomain.User {
	return profiledomain.User{
		ID:              1,
		Name:            "Alex Morgan",
		Email:           "alex.morgan@example.com",
		ProfileImageURL: "https://i.pravatar.cc/150?img=33",
		Pets: []profiledomain.Pet{
			{
				Name:     "Max",
				Type:     catalogdomain.PetTypeDog,
				Breed:    "Golden Retriever",
				Age:      3,
				ImageURL: "https://images.unsplash.com/photo-1633722715463-d30f4f325e24?w=400",
			},
			{
				Name:     "Luna",
				Type:     catalogdomain.PetTypeCat,
				Breed:    "Siamese",
				Age:      2,
				ImageURL: "https://images.unsplash.com/photo-1574158622682-e40e69881006?w=400",
			},
		},
		FavoriteVenueIDs: []int{1, 2, 3},
	}
}

func defaultBookings(now time.Time) []bookingdomain.Booking {
	return []bookingdomain.Booking{
		{
			ID:           1,
			UserID:       1,
			VenueID:      3,
			Date:         now.AddDate(0, 0, 7),
			TimeSlot:     "2:00 PM - 4:00 PM",
			NumberOfPets: 2,
			Notes:        "Checking in with Max and Luna for weekend getaway",
			Status:       bookingdomain.BookingStatusConfirmed,
		},
		{
			ID:           2,
			UserID:       1,
			VenueID:      1,
			Date:         now.AddDate(0, 0, -10),
			TimeSlot:     "10:00 AM - 12:00 PM",
			NumberOfPets: 1,
			Notes:        "Playtime session for Max",
			Status:       bookingdomain.BookingStatusCompleted,
		},
	}
}
