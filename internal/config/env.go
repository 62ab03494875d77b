// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the `env` and
// `envPrefix` tags of [StructuredConfig], so APP_TOKEN_SIGN_KEY lands in
// cfg.App.TokenSignKey and STORAGE_DB_URI in cfg.Storage.DB.URI. The
// unprefixed PORT, DB_USER, DB_PASS and ACCESS_TOKEN_SECRET are read into
// root fields and only resolved after merging.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
