package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/mypetvenues/services/api/internal/admin/application"
	"github.com/mypetvenues/services/api/internal/booking/domain"
	"github.com/mypetvenues/services/api/internal/interfaces/http/common"
)

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
}

func buildBookingResponse(booking domain.Booking) bookingResponse {
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

// bookingListHandler returns the raw ledger in insertion order, uncut by the
// public date sort, for operational inspection.
func (h *Handler) bookingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := h.bookings.List(r.Context())
		if err != nil {
			h.logger.Printf("admin booking list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "booking list fetch failed"})
			return
		}

		items := make([]bookingResponse, 0, len(bookings))
		for _, booking := range bookings {
			items = append(items, buildBookingResponse(booking))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, bookingListResponse{Items: items})
	}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// bookingStatusHandler applies a status transition, enforcing the booking
// state machine: 400 for an unknown status, 404 for an unknown booking,
// 409 when the transition table forbids the change.
func (h *Handler) bookingStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
			return
		}

		defer r.Body.Close()
		var req statusUpdateRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("malformed request: %v", err),
			})
			return
		}

		status, ok := domain.ParseBookingStatus(req.Status)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("unknown status %q", req.Status),
			})
			return
		}

		booking, err := h.bookings.Transition(r.Context(), id, status)
		if err != nil {
			switch {
			case errors.Is(err, adminapp.ErrBookingNotFound):
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "booking not found"})
			case errors.Is(err, adminapp.ErrInvalidTransition):
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "invalid status transition"})
			default:
				h.logger.Printf("admin status update failed id=%d err=%v", id, err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "status update failed"})
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBookingResponse(*booking))
	}
}
