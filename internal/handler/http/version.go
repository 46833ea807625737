package http

import (
	"net/http"

	"github.com/MKhiriev/go-punch-tracker/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.buildInfo, http.StatusOK)
}
