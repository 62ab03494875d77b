// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/bistro-boss/models"
	"github.com/go-playground/validator/v10"
)

// structValidator validates the request models of the service using the
// `validate` struct tags declared on them.
type structValidator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator for models.User and token payloads
// (map[string]any).
func NewValidator() Validator {
	return &structValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *structValidator) Validate(ctx context.Context, value any) error {
	switch val := value.(type) {
	case models.User:
		if err := v.validate.StructCtx(ctx, val); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUser, describe(err))
		}
		return nil
	case map[string]any:
		return v.validatePayload(ctx, val)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// validatePayload checks that a token payload carries a well-formed email.
func (v *structValidator) validatePayload(ctx context.Context, payload map[string]any) error {
	email, ok := payload["email"].(string)
	if !ok {
		return fmt.Errorf("%w: email is missing", ErrInvalidEmail)
	}

	if err := v.validate.VarCtx(ctx, email, "required,email"); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, describe(err))
	}

	return nil
}

// describe flattens validator.ValidationErrors into "field: tag" pairs.
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Field() == "" {
			parts = append(parts, fe.Tag())
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return strings.Join(parts, ", ")
}
