// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/bistro-boss/internal/config"
	"github.com/MKhiriev/bistro-boss/internal/logger"
)

// Storages groups every repository used by the service layer together with
// the connection they share.
type Storages struct {
	UserRepository   UserRepository
	MenuRepository   MenuRepository
	ReviewRepository ReviewRepository
	CartRepository   CartRepository

	db *DB
}

// NewStorages connects to MongoDB, ensures the required indexes and builds
// the repositories on top of the single shared client.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.EnsureIndexes(ctx); err != nil {
		_ = db.Close(cfg.DB.ConnectTimeout)
		return nil, fmt.Errorf("error preparing database: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		MenuRepository:   NewMenuRepository(db, log),
		ReviewRepository: NewReviewRepository(db, log),
		CartRepository:   NewCartRepository(db, log),
		db:               db,
	}, nil
}

// Close disconnects the shared MongoDB client.
func (s *Storages) Close(timeout time.Duration) error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close(timeout)
}
