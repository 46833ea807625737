package http

import (
	"net/http"

	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

func (h *Handler) logPunch(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.PunchCreate
	if err := utils.DecodeJSON(r, &req); err != nil {
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	punch, err := h.services.TrainingService.LogPunch(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, punch, http.StatusCreated)
}

func (h *Handler) sessionPunches(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	punches, err := h.services.TrainingService.SessionPunches(r.Context(), id, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if punches == nil {
		punches = []models.Punch{}
	}

	utils.WriteJSON(w, punches, http.StatusOK)
}
