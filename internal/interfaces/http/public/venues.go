package public

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/mypetvenues/services/api/internal/catalog/application"
	"github.com/mypetvenues/services/api/internal/interfaces/http/common"
)

// venueListHandler serves the catalogue. Without query parameters it returns
// every venue in seed order; q/type/pet narrow the result with AND semantics.
func (h *Handler) venueListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		venueType, ok := common.CanonicalVenueType(query.Get("type"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "unknown venue type"})
			return
		}
		petType, ok := common.CanonicalPetType(query.Get("pet"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "unknown pet category"})
			return
		}

		filter := catalogapp.VenueFilter{
			Keyword: strings.TrimSpace(query.Get("q")),
			Type:    venueType,
			Pet:     petType,
		}

		venues, err := h.venueQueries.Search(r.Context(), filter)
		if err != nil {
			h.logger.Printf("venue search failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "venue search failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildVenueListResponse(venues))
	}
}

func (h *Handler) venueFeaturedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := h.venueQueries.Featured(r.Context())
		if err != nil {
			h.logger.Printf("featured venue fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "featured venue fetch failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildVenueListResponse(venues))
	}
}

func (h *Handler) venueDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid venue id"})
			return
		}

		venue, err := h.venueQueries.Detail(r.Context(), id)
		if err != nil {
			h.logger.Printf("venue detail fetch failed id=%d err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "venue detail fetch failed"})
			return
		}
		if venue == nil {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildVenueResponse(*venue))
	}
}

// venueReviewsHandler returns the venue's reviews in seed order. A venue
// without reviews, or an unknown venue id, yields an empty list.
func (h *Handler) venueReviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid venue id"})
			return
		}

		reviews, err := h.venueQueries.Reviews(r.Context(), id)
		if err != nil {
			h.logger.Printf("review fetch failed venue=%d err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "review fetch failed"})
			return
		}

		items := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, buildReviewResponse(review))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, reviewListResponse{Items: items, Total: len(items)})
	}
}
