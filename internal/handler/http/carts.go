// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/utils"
	"github.com/MKhiriev/bistro-boss/models"
	"github.com/go-chi/chi/v5"
)

// listCarts answers GET /carts?email=. It runs behind auth, so the identity
// is always present unless the route is mounted without it.
func (h *Handler) listCarts(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoIdentity).Send()
		utils.WriteError(w, ErrNoIdentity.Error(), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.CartService.ListCartEntries(r.Context(), identity, r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, cartErrorStatuses)
		return
	}

	utils.WriteJSON(w, nonNil(entries), http.StatusOK)
}

// addCartEntry stores the posted JSON object as a cart entry. Any object is
// accepted; fields are stored exactly as sent.
func (h *Handler) addCartEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.CartEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || entry == nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.CartService.AddCartEntry(r.Context(), entry)
	if err != nil {
		writeServiceError(w, r, err, cartErrorStatuses)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteCartEntry(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.CartService.DeleteCartEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, cartErrorStatuses)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
