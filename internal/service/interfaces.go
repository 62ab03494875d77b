// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bistro-boss/models"
)

type AuthService interface {
	IssueToken(ctx context.Context, payload map[string]any) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
	PromoteUser(ctx context.Context, id string) (models.UpdateResult, error)
}

// CatalogService serves the read-only menu and reviews collections.
type CatalogService interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type CartService interface {
	// ListCartEntries returns the cart of email on behalf of requester.
	// An empty email yields an empty cart; any other email must equal
	// requester.Email.
	ListCartEntries(ctx context.Context, requester models.Identity, email string) ([]models.CartEntry, error)
	AddCartEntry(ctx context.Context, entry models.CartEntry) (models.InsertResult, error)
	DeleteCartEntry(ctx context.Context, id string) (models.DeleteResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
