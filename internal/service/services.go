// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/bistro-boss/internal/config"
	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CatalogService CatalogService
	CartService    CartService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:    NewUserValidationService(validator).Wrap(NewUserService(storages.UserRepository, logger)),
		CatalogService: NewCatalogService(storages.MenuRepository, storages.ReviewRepository, logger),
		CartService:    NewCartService(storages.CartRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
