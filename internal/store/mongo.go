// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/bistro-boss/internal/config"
	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/metrics"
	"github.com/MKhiriev/bistro-boss/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB owns the single long-lived MongoDB client of the process and the
// database holding the application collections.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB using cfg and pings the primary.
//
// The client uses the Stable API v1 in strict mode. User and Password, when
// set, are applied as credentials on top of the URI. Both the connect and the
// ping are bounded by cfg.ConnectTimeout. A failed ping is returned as an
// error so that the caller can refuse to start.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetAppName("bistro-boss").
		SetMonitor(metrics.CommandMonitor()).
		SetPoolMonitor(metrics.PoolMonitor())

	if cfg.User != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = config.DefaultConnectTimeout
	}
	opts.SetConnectTimeout(timeout)

	// establish connection
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// ping database
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &DB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}, nil
}

// Collection returns the named collection of the application database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// EnsureIndexes creates the indexes the repositories rely on.
// The unique email index turns concurrent registrations with the same email
// into a duplicate key error instead of two documents.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	users := db.Collection(models.User{}.CollectionName())

	name, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating users email index: %w", err)
	}

	carts := db.Collection(models.CartEntry{}.CollectionName())
	if _, err = carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email"),
	}); err != nil {
		return fmt.Errorf("error creating carts email index: %w", err)
	}

	db.logger.Debug().Str("index", name).Msg("indexes ensured")
	return nil
}

// Close disconnects the client, waiting at most timeout for in-flight
// operations.
func (db *DB) Close(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting database: %w", err)
	}

	return nil
}
