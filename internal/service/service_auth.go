// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bistro-boss/internal/config"
	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/internal/store"
	"github.com/MKhiriev/bistro-boss/internal/utils"
	"github.com/MKhiriev/bistro-boss/internal/validators"
	"github.com/MKhiriev/bistro-boss/models"
)

// authService is the concrete implementation of AuthService.
// It issues and verifies HS256 access tokens that carry the caller supplied
// identity payload.
type authService struct {
	// userRepository is consulted only when requireRegisteredUser is set.
	userRepository store.UserRepository

	// validator checks the payload email when requireRegisteredUser is set.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// requireRegisteredUser restricts issuance to emails of stored users.
	requireRegisteredUser bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:        userRepository,
		validator:             validator,
		tokenSignKey:          cfg.TokenSignKey,
		tokenIssuer:           cfg.TokenIssuer,
		tokenDuration:         cfg.TokenDuration,
		requireRegisteredUser: cfg.TokenRequireRegisteredUser,
		logger:                logger,
	}
}

// IssueToken signs a JWT embedding payload as the "user" claim.
//
// Any payload is signed as given, including an empty one. When the service
// is configured to require registered users, the payload must instead carry
// a well-formed "email" that belongs to a stored user.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if the registered-user check is enabled and the
//     payload has no valid email.
//   - ErrUserNotRegistered if the registered-user check is enabled and fails.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) IssueToken(ctx context.Context, payload map[string]any) (models.Token, error) {
	if a.requireRegisteredUser {
		if err := a.checkRegistered(ctx, payload); err != nil {
			return models.Token{}, err
		}
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, payload, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// checkRegistered accepts payload only if its email belongs to a stored user.
func (a *authService) checkRegistered(ctx context.Context, payload map[string]any) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, payload); err != nil {
		log.Err(err).Msg("invalid token payload provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	identity := models.NewIdentity(payload)
	_, err := a.userRepository.FindUserByEmail(ctx, identity.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", identity.Email).Msg("token requested for unregistered email")
		return ErrUserNotRegistered
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, expired, wrong issuer, malformed,
// missing "user" claim) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
