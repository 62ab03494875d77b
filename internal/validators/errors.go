// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidUser  = errors.New("invalid user")
	ErrInvalidEmail = errors.New("invalid email")
)
