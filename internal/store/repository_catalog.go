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

type menuRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMenuRepository returns a MenuRepository backed by the menu collection of db.
func NewMenuRepository(db *DB, log *logger.Logger) MenuRepository {
	return &menuRepository{
		collection: db.Collection(models.MenuItem{}.CollectionName()),
		logger:     log,
	}
}

func (m *menuRepository) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	if err := findAll(ctx, m.collection, bson.D{}, &items); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "menuRepository.ListMenu").Msg("error listing menu")
		return nil, err
	}

	return items, nil
}

type reviewRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewReviewRepository returns a ReviewRepository backed by the reviews collection of db.
func NewReviewRepository(db *DB, log *logger.Logger) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(models.Review{}.CollectionName()),
		logger:     log,
	}
}

func (r *reviewRepository) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := findAll(ctx, r.collection, bson.D{}, &reviews); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reviewRepository.ListReviews").Msg("error listing reviews")
		return nil, err
	}

	return reviews, nil
}

// findAll runs Find with filter and decodes every document into results,
// which must be a pointer to a slice.
func findAll(ctx context.Context, collection *mongo.Collection, filter any, results any) error {
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFindingDocuments, err)
	}

	if err = cursor.All(ctx, results); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return nil
}
