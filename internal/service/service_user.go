// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userService manages registered users. Every method performs exactly one
// repository call.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser registers user. Any id or role sent by the client is discarded:
// the datastore assigns the id and admin rights are granted only by
// PromoteUser.
func (u *userService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	user.ID = primitive.NilObjectID
	user.Role = models.RoleDefault

	result, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("id", result.InsertedID).Msg("user registered")
	return result, nil
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	return users, nil
}

func (u *userService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	result, err := u.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return result, nil
}

// PromoteUser grants the admin role. Promoting an admin again is a success
// with ModifiedCount equal to zero.
func (u *userService) PromoteUser(ctx context.Context, id string) (models.UpdateResult, error) {
	result, err := u.userRepository.PromoteUser(ctx, id)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("user promotion ended with error: %w", err)
	}

	return result, nil
}
