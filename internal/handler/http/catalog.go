// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bistro-boss/internal/utils"
)

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.CatalogService.ListMenu(r.Context())
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.CatalogService.ListReviews(r.Context())
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	utils.WriteJSON(w, nonNil(reviews), http.StatusOK)
}
