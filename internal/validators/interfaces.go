// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the
// datastore.
//
// The rules live in `validate` struct tags on the models and are enforced
// with go-playground/validator. Token payloads are plain maps; they are
// checked for a well-formed email claim when issuance is limited to
// registered users.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input. Types the implementation does
	// not know yield ErrUnsupportedType.
	Validate(context.Context, any) error
}
