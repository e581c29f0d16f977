package public

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogdomain "github.com/mypetvenues/services/api/internal/catalog/domain"
	"github.com/mypetvenues/services/api/internal/interfaces/http/common"
	profiledomain "github.com/mypetvenues/services/api/internal/profile/domain"
)

func (h *Handler) profileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.profile.CurrentUser(r.Context())
		if err != nil {
			h.logger.Printf("profile fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "profile fetch failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildUserResponse(user))
	}
}

type replaceProfileRequest struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	ProfileImageURL  string       `json:"profileImageUrl"`
	Pets             []petPayload `json:"pets"`
	FavoriteVenueIDs []int        `json:"favoriteVenueIds"`
}

// toDomain validates pet categories and maps the request onto the domain
// record. The record itself is accepted as-is; last writer wins.
func (req replaceProfileRequest) toDomain() (profiledomain.User, error) {
	pets := make([]profiledomain.Pet, 0, len(req.Pets))
	for _, p := range req.Pets {
		petType, ok := catalogdomain.ParsePetType(p.Type)
		if !ok {
			return profiledomain.User{}, fmt.Errorf("unknown pet category %q", p.Type)
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
		ID:               req.ID,
		Name:             req.Name,
		Email:            req.Email,
		ProfileImageURL:  req.ProfileImageURL,
		Pets:             pets,
		FavoriteVenueIDs: req.FavoriteVenueIDs,
	}, nil
}

func (h *Handler) profileReplaceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req replaceProfileRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("malformed request: %v", err),
			})
			return
		}

		user, err := req.toDomain()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		if err := h.profile.Replace(r.Context(), user); err != nil {
			h.logger.Printf("profile replace failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "profile replace failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildUserResponse(user))
	}
}

func (h *Handler) favoriteAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "venueId"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid venue id"})
			return
		}

		user, err := h.profile.AddFavorite(r.Context(), id)
		if err != nil {
			h.logger.Printf("favorite add failed venue=%d err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "favorite add failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string][]int{"favoriteVenueIds": user.FavoriteVenueIDs})
	}
}

func (h *Handler) favoriteRemoveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "venueId"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid venue id"})
			return
		}

		user, err := h.profile.RemoveFavorite(r.Context(), id)
		if err != nil {
			h.logger.Printf("favorite remove failed venue=%d err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "favorite remove failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string][]int{"favoriteVenueIds": user.FavoriteVenueIDs})
	}
}
