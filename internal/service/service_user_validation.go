// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bistro-boss/internal/validators"
	"github.com/MKhiriev/bistro-boss/models"
)

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	// user in json should consist of:
	//  - Email (required, email format)
	//  - (not always) Name
	//  - (not always) PhotoURL
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) PromoteUser(ctx context.Context, id string) (models.UpdateResult, error) {
	return v.inner.PromoteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
