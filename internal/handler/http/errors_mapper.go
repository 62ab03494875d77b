// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/service"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/internal/utils"
	"github.com/MKhiriev/bistro-boss/internal/validators"
)

// errorStatus pairs a sentinel with the status it maps to. Tables are
// ordered: the first matching sentinel wins.
type errorStatus struct {
	target error
	status int
}

var tokenErrorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrUserNotRegistered, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
}

var createUserErrorStatuses = []errorStatus{
	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{validators.ErrInvalidUser, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
}

var deleteUserErrorStatuses = []errorStatus{
	{store.ErrInvalidID, http.StatusBadRequest},
	{store.ErrUserNotFound, http.StatusNotFound},
}

var promoteUserErrorStatuses = []errorStatus{
	{store.ErrInvalidID, http.StatusBadRequest},
	{store.ErrUserNotFound, http.StatusBadRequest},
}

var cartErrorStatuses = []errorStatus{
	{service.ErrForbidden, http.StatusForbidden},
	{store.ErrInvalidID, http.StatusBadRequest},
	{store.ErrCartEntryNotFound, http.StatusBadRequest},
}

// statusFromError returns the status and client message for err.
// Unmatched errors map to 500 with the generic status text so that
// datastore details never reach the client.
func statusFromError(err error, table []errorStatus) (int, string) {
	for _, es := range table {
		if errors.Is(err, es.target) {
			return es.status, es.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err through the request logger and writes the
// mapped JSON error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, table []errorStatus) {
	status, message := statusFromError(err, table)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("unexpected error occurred")
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteError(w, message, status)
}
