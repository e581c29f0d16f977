package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	bookingapp "github.com/mypetvenues/services/api/internal/booking/application"
	catalogapp "github.com/mypetvenues/services/api/internal/catalog/application"
	profileapp "github.com/mypetvenues/services/api/internal/profile/application"
	"github.com/mypetvenues/services/api/internal/theme"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	venueQueries catalogapp.VenueQueryService
	profile      profileapp.ProfileService
	bookings     bookingapp.BookingService
	theme        *theme.Service
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger       *log.Logger
	VenueQueries catalogapp.VenueQueryService
	Profile      profileapp.ProfileService
	Bookings     bookingapp.BookingService
	Theme        *theme.Service
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		venueQueries: cfg.VenueQueries,
		profile:      cfg.Profile,
		bookings:     cfg.Bookings,
		theme:        cfg.Theme,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/venues", h.venueListHandler())
	r.Get("/venues/featured", h.venueFeaturedHandler())
	r.Get("/venues/{id}", h.venueDetailHandler())
	r.Get("/venues/{id}/reviews", h.venueReviewsHandler())
	r.Get("/profile", h.profileHandler())
	r.Put("/profile", h.profileReplaceHandler())
	r.Post("/profile/favorites/{venueId}", h.favoriteAddHandler())
	r.Delete("/profile/favorites/{venueId}", h.favoriteRemoveHandler())
	r.Get("/bookings", h.bookingListHandler())
	r.Post("/bookings", h.bookingCreateHandler())
	r.Post("/bookings/{id}/cancel", h.bookingCancelHandler())
	r.Get("/theme", h.themeHandler())
	r.Put("/theme", h.themeSetHandler())
	r.Post("/theme/toggle", h.themeToggleHandler())
}
