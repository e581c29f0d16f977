package public

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	bookingapp "github.com/mypetvenues/services/api/internal/booking/application"
	"github.com/mypetvenues/services/api/internal/interfaces/http/common"
)

func (h *Handler) bookingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := h.bookings.List(r.Context())
		if err != nil {
			h.logger.Printf("booking list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "booking list fetch failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBookingListResponse(bookings))
	}
}

type createBookingRequest struct {
	UserID       int    `json:"userId"`
	VenueID      int    `json:"venueId"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	NumberOfPets int    `json:"numberOfPets"`
	Notes        string `json:"notes"`
	// Status is accepted for shape compatibility with the booking record but
	// ignored; new bookings always start out pending.
	Status string `json:"status,omitempty"`
}

var bookingDateLayouts = []string{time.RFC3339, "2006-01-02"}

func (req createBookingRequest) parseDate() (time.Time, error) {
	value := strings.TrimSpace(req.Date)
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	for _, layout := range bookingDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", req.Date)
}

func (h *Handler) bookingCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createBookingRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("malformed request: %v", err),
			})
			return
		}

		date, err := req.parseDate()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		booking, err := h.bookings.Create(r.Context(), bookingapp.CreateBookingCommand{
			UserID:       req.UserID,
			VenueID:      req.VenueID,
			Date:         date,
			TimeSlot:     req.TimeSlot,
			NumberOfPets: req.NumberOfPets,
			Notes:        req.Notes,
		})
		if err != nil {
			h.logger.Printf("booking create failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "booking create failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildBookingResponse(booking))
	}
}

// bookingCancelHandler marks the booking cancelled. An unknown id is a no-op
// and still answers 204, mirroring the permissive service contract.
func (h *Handler) bookingCancelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
			return
		}

		if err := h.bookings.Cancel(r.Context(), id); err != nil {
			h.logger.Printf("booking cancel failed id=%d err=%v", id, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "booking cancel failed"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
