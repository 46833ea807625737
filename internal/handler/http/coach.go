package http

import (
	"net/http"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/service"
	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

func (h *Handler) inviteAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.CoachInvite
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg(invalidJSONMessage)
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	invitation, err := h.services.CoachService.Invite(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, invitation, http.StatusCreated)
}

func (h *Handler) acceptInvite(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.InviteAccept
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg(invalidJSONMessage)
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	link, err := h.services.CoachService.Accept(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, link, http.StatusOK)
}

func (h *Handler) coachAthletes(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	athletes, err := h.services.CoachService.Athletes(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, athletes, http.StatusOK)
}

// leaderboard defaults the range query to a week.
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	rangeName := r.URL.Query().Get("range")
	if rangeName == "" {
		rangeName = service.LeaderboardRangeWeek
	}

	board, err := h.services.CoachService.Leaderboard(r.Context(), id, rangeName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, board, http.StatusOK)
}
