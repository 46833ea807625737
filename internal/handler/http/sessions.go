// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	limit, err := intQuery(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.TrainingService.ListSessions(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// createSession accepts an empty body; the service picks a default name.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.SessionCreate
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	session, err := h.services.TrainingService.CreateSession(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.TrainingService.GetSession(r.Context(), id, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.SessionUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		http.Error(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	session, err := h.services.TrainingService.UpdateSession(r.Context(), id, sessionID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// intQuery returns 0 for an absent parameter.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, ErrInvalidQuery
	}
	return v, nil
}
