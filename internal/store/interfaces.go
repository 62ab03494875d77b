// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/bistro-boss/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users in the users collection.
type UserRepository interface {
	// CreateUser inserts user. A user with the same email already stored
	// yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	// ListUsers returns every stored user in natural order.
	ListUsers(ctx context.Context) ([]models.User, error)
	// FindUserByEmail returns the user with the given email or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// DeleteUser removes the user with the given id. Nothing deleted yields
	// [ErrUserNotFound]; a malformed id yields [ErrInvalidID].
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
	// PromoteUser sets the role of the user with the given id to admin.
	// Nothing matched yields [ErrUserNotFound].
	PromoteUser(ctx context.Context, id string) (models.UpdateResult, error)
}

// MenuRepository reads the menu collection.
type MenuRepository interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
}

// ReviewRepository reads the reviews collection.
type ReviewRepository interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
}

// CartRepository persists cart entries in the carts collection.
type CartRepository interface {
	// ListCartEntries returns the entries whose email equals email exactly.
	ListCartEntries(ctx context.Context, email string) ([]models.CartEntry, error)
	// AddCartEntry inserts entry and returns the generated id.
	AddCartEntry(ctx context.Context, entry models.CartEntry) (models.InsertResult, error)
	// DeleteCartEntry removes the entry with the given id or returns
	// [ErrCartEntryNotFound].
	DeleteCartEntry(ctx context.Context, id string) (models.DeleteResult, error)
}
