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

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, createUserErrorStatuses)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	utils.WriteJSON(w, nonNil(users), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.UserService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, deleteUserErrorStatuses)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) promoteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.UserService.PromoteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, promoteUserErrorStatuses)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// nonNil makes empty collections encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
