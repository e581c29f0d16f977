package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adminapp "github.com/mypetvenues/services/api/internal/admin/application"
	bookingapp "github.com/mypetvenues/services/api/internal/booking/application"
	catalogapp "github.com/mypetvenues/services/api/internal/catalog/application"
	"github.com/mypetvenues/services/api/internal/config"
	"github.com/mypetvenues/services/api/internal/infrastructure/memory"
	"github.com/mypetvenues/services/api/internal/infrastructure/seed"
	adminhttp "github.com/mypetvenues/services/api/internal/interfaces/http/admin"
	"github.com/mypetvenues/services/api/internal/interfaces/http/common"
	publichttp "github.com/mypetvenues/services/api/internal/interfaces/http/public"
	profileapp "github.com/mypetvenues/services/api/internal/profile/application"
	"github.com/mypetvenues/services/api/internal/theme"
)

// Server is the composition root: it seeds the in-memory stores, builds the
// application services, and wires the public and admin handlers onto the
// router. No domain logic lives here.
type Server struct {
	logger         *log.Logger
	addr           string
	allowedOrigins []string
	location       *time.Location

	venues        *memory.VenueRepository
	venueQueries  catalogapp.VenueQueryService
	profile       profileapp.ProfileService
	bookings      bookingapp.BookingService
	adminBookings adminapp.BookingService
	themeService  *theme.Service
}

// New builds a Server from configuration and a seeded dataset.
func New(cfg config.Config, data seed.Data) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
		cfg.ServerLog.Printf("failed to load timezone %s: %v, using UTC", cfg.Timezone, err)
	}

	venueRepo := memory.NewVenueRepository(data.Venues)
	reviewRepo := memory.NewReviewRepository(data.Reviews)
	userRepo := memory.NewUserRepository(data.User)
	bookingRepo := memory.NewBookingRepository(data.Bookings)

	srv := &Server{
		logger:         cfg.ServerLog,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		location:       loc,
		venues:         venueRepo,
		venueQueries:   catalogapp.NewVenueQueryService(venueRepo, reviewRepo),
		profile:        profileapp.NewProfileService(userRepo),
		bookings:       bookingapp.NewBookingService(bookingRepo),
		adminBookings:  adminapp.NewBookingService(bookingRepo),
		themeService:   theme.NewService(),
	}
	return srv
}

// Routes assembles the router with middleware and every handler mounted.
func (s *Server) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:       s.logger,
		VenueQueries: s.venueQueries,
		Profile:      s.profile,
		Bookings:     s.bookings,
		Theme:        s.themeService,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:   s.logger,
		Bookings: s.adminBookings,
	})
	router.Route("/admin", adminHandler.Register)

	return router
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// healthHandler reports process liveness and the catalogue size. With no
// external backend there is nothing else to probe.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"venues": s.venues.Count(),
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// withCORS builds a middleware adding CORS headers for allowed origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// waitForShutdown watches for ListenAndServe failures and OS signals, and
// drains the HTTP server gracefully.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during shutdown: %v", err)
		}
	}
}
