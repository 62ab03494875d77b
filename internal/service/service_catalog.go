// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/models"
)

type catalogService struct {
	menuRepository   store.MenuRepository
	reviewRepository store.ReviewRepository

	logger *logger.Logger
}

func NewCatalogService(menuRepository store.MenuRepository, reviewRepository store.ReviewRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		menuRepository:   menuRepository,
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (c *catalogService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items, err := c.menuRepository.ListMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing menu ended with error: %w", err)
	}

	return items, nil
}

func (c *catalogService) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := c.reviewRepository.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reviews ended with error: %w", err)
	}

	return reviews, nil
}
