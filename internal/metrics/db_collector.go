// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"context"

	"go.mongodb.org/mongo-driver/event"
)

// CommandMonitor returns a driver command monitor that observes every
// finished command in DBCommandDuration.
func CommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			DBCommandDuration.WithLabelValues(e.CommandName, "success").Observe(e.Duration.Seconds())
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			DBCommandDuration.WithLabelValues(e.CommandName, "failure").Observe(e.Duration.Seconds())
		},
	}
}

// PoolMonitor returns a driver pool monitor that keeps DBPoolConnections
// in sync with the connections opened and checked out by the client.
func PoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: RecordPoolEvent,
	}
}

// RecordPoolEvent applies a single pool event to DBPoolConnections.
func RecordPoolEvent(e *event.PoolEvent) {
	switch e.Type {
	case event.ConnectionCreated:
		DBPoolConnections.WithLabelValues("open").Inc()
	case event.ConnectionClosed:
		DBPoolConnections.WithLabelValues("open").Dec()
	case event.GetSucceeded:
		DBPoolConnections.WithLabelValues("in_use").Inc()
	case event.ConnectionReturned:
		DBPoolConnections.WithLabelValues("in_use").Dec()
	}
}
