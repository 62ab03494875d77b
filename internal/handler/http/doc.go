// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the users,
// menu, reviews and carts resources. Cross-cutting concerns such as CORS,
// bearer-token authentication, request tracing, access logging, metrics and
// response compression are handled in this package before requests are
// delegated to the service layer.
package http
