// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type cartRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewCartRepository returns a CartRepository backed by the carts collection of db.
func NewCartRepository(db *DB, log *logger.Logger) CartRepository {
	return &cartRepository{
		collection: db.Collection(models.CartEntry{}.CollectionName()),
		logger:     log,
	}
}

func (c *cartRepository) ListCartEntries(ctx context.Context, email string) ([]models.CartEntry, error) {
	entries := make([]models.CartEntry, 0)
	if err := findAll(ctx, c.collection, bson.D{{Key: "email", Value: email}}, &entries); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cartRepository.ListCartEntries").Msg("error listing cart entries")
		return nil, err
	}

	return entries, nil
}

func (c *cartRepository) AddCartEntry(ctx context.Context, entry models.CartEntry) (models.InsertResult, error) {
	res, err := c.collection.InsertOne(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cartRepository.AddCartEntry").Msg("error inserting cart entry")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInsertingDocument, err)
	}

	return insertResult(res), nil
}

func (c *cartRepository) DeleteCartEntry(ctx context.Context, id string) (models.DeleteResult, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := c.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cartRepository.DeleteCartEntry").Msg("error deleting cart entry")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrDeletingDocument, err)
	}
	if res.DeletedCount == 0 {
		return deleteResult(res), ErrCartEntryNotFound
	}

	return deleteResult(res), nil
}
