package http

import (
	"net/http"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

const invalidJSONMessage = "invalid JSON was passed"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	created, err := h.services.AuthService.Signup(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	tokens, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg(invalidJSONMessage)
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	tokens, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

// logout revokes the refresh token named in the body. An empty body only
// acknowledges the call; access tokens are stateless and simply expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &req); err != nil {
			http.Error(w, invalidJSONMessage, http.StatusBadRequest)
			return
		}
	}

	if req.RefreshToken != "" {
		if err := h.services.AuthService.Logout(r.Context(), req.RefreshToken); err != nil {
			writeError(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Me(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
