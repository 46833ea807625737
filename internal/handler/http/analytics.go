package http

import (
	"net/http"

	"github.com/MKhiriev/go-punch-tracker/internal/utils"
)

func (h *Handler) sessionAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	analytics, err := h.services.TrainingService.SessionAnalytics(r.Context(), id, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handler) weeklyAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	weekly, err := h.services.TrainingService.WeeklyAnalytics(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, weekly, http.StatusOK)
}
