// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/models"
)

// cartService manages shopping cart entries keyed by owner email.
type cartService struct {
	cartRepository store.CartRepository

	logger *logger.Logger
}

func NewCartService(cartRepository store.CartRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository: cartRepository,
		logger:         logger,
	}
}

// ListCartEntries returns the entries owned by email.
//
// An empty email returns an empty cart without touching the datastore.
// A non-empty email different from requester.Email yields ErrForbidden;
// the comparison is exact.
func (c *cartService) ListCartEntries(ctx context.Context, requester models.Identity, email string) ([]models.CartEntry, error) {
	if email == "" {
		return []models.CartEntry{}, nil
	}

	if email != requester.Email {
		logger.FromContext(ctx).Warn().
			Str("requested", email).
			Str("identity", requester.Email).
			Msg("cart of another user requested")
		return nil, ErrForbidden
	}

	entries, err := c.cartRepository.ListCartEntries(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing cart entries ended with error: %w", err)
	}

	return entries, nil
}

// AddCartEntry stores entry as given. A client supplied "_id" is dropped so
// the id is always assigned by the datastore; entry itself is not modified.
func (c *cartService) AddCartEntry(ctx context.Context, entry models.CartEntry) (models.InsertResult, error) {
	document := maps.Clone(entry)
	delete(document, "_id")

	result, err := c.cartRepository.AddCartEntry(ctx, document)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("adding cart entry ended with error: %w", err)
	}

	return result, nil
}

func (c *cartService) DeleteCartEntry(ctx context.Context, id string) (models.DeleteResult, error) {
	result, err := c.cartRepository.DeleteCartEntry(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("deleting cart entry ended with error: %w", err)
	}

	return result, nil
}
