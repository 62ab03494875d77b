// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, withMetrics)

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip, middleware.Timeout(h.requestTimeout))

		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Post("/jwt", h.issueToken)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Delete("/{id}", h.deleteUser)
			r.Patch("/admin/{id}", h.promoteUser)
		})

		r.Get("/menu", h.listMenu)
		r.Get("/reviews", h.listReviews)

		r.Route("/carts", func(r chi.Router) {
			r.With(h.auth).Get("/", h.listCarts)
			r.Post("/", h.addCartEntry)
			r.Delete("/{id}", h.deleteCartEntry)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
