package public

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mypetvenues/services/api/internal/interfaces/http/common"
)

func (h *Handler) themeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, themeResponse{DarkMode: h.theme.DarkMode()})
	}
}

func (h *Handler) themeSetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req themeResponse
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("malformed request: %v", err),
			})
			return
		}

		h.theme.Set(req.DarkMode)
		common.WriteJSON(h.logger, w, http.StatusOK, themeResponse{DarkMode: h.theme.DarkMode()})
	}
}

func (h *Handler) themeToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, themeResponse{DarkMode: h.theme.Toggle()})
	}
}
