// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// bistro-boss backend. It aggregates all sub-configurations and is
// populated by merging built-in defaults, a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key
	// and token lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Port is the bare listening port (e.g. "5000"). It is used only when
	// Server.HTTPAddress is not configured.
	// Env: PORT
	Port string `env:"PORT"`

	// DBUser, DBPass and AccessTokenSecret accept the variable names of
	// earlier deployments. Each is used only when the matching
	// STORAGE_DB_USER, STORAGE_DB_PASSWORD or APP_TOKEN_SIGN_KEY setting
	// is empty after all sources are merged.
	// Env: DB_USER, DB_PASS, ACCESS_TOKEN_SECRET
	DBUser            string `env:"DB_USER"`
	DBPass            string `env:"DB_PASS"`
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends used by the
// application.
type Storage struct {
	// DB holds the document database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// issuance, logging and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify access tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens with a different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenRequireRegisteredUser makes token issuance check that the
	// payload email belongs to a stored user.
	// Env: APP_TOKEN_REQUIRE_REGISTERED_USER
	TokenRequireRegisteredUser bool `env:"TOKEN_REQUIRE_REGISTERED_USER"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000" or ":5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the CORS origins allowed to call the API.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// DB holds connection settings for the MongoDB backend.
type DB struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017" or "mongodb+srv://cluster0.example.net").
	// Env: STORAGE_DB_URI
	URI string `env:"URI"`

	// User and Password are optional credentials applied on top of URI.
	// Env: STORAGE_DB_USER, STORAGE_DB_PASSWORD
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`

	// Name is the database holding the users, menu, reviews and carts
	// collections.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// ConnectTimeout bounds the initial connect and ping at startup.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Default values applied before any other configuration source.
const (
	DefaultPort           = "5000"
	DefaultTokenIssuer    = "bistro-boss"
	DefaultTokenDuration  = time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBURI          = "mongodb://localhost:27017"
	DefaultDBName         = "bistroBoss"
	DefaultConnectTimeout = 10 * time.Second
	DefaultLogLevel       = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				URI:            DefaultDBURI,
				Name:           DefaultDBName,
				ConnectTimeout: DefaultConnectTimeout,
			},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded first)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(flagSetArgs()).
		withJSON().
		build()
}
