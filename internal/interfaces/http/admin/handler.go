package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/mypetvenues/services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger   *log.Logger
	bookings adminapp.BookingService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger   *log.Logger
	Bookings adminapp.BookingService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		bookings: cfg.Bookings,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/bookings", h.bookingListHandler())
	r.Patch("/bookings/{id}/status", h.bookingStatusHandler())
}
