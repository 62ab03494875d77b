// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUserNotRegistered       = errors.New("user is not registered")

	ErrForbidden = errors.New("access to another user's data is forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
