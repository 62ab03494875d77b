// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the application's HTTP server.
//
// It owns startup, signal handling and graceful shutdown. Shutdown hooks
// registered with OnShutdown run after the listener has drained, which is
// where the datastore connection is released.
package server
