// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/utils"
)

// issueToken signs the posted JSON object into a bearer token. Any object is
// accepted; JSON that is not an object is rejected.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, err, tokenErrorStatuses)
		return
	}

	utils.WriteJSON(w, token, http.StatusOK)
}
