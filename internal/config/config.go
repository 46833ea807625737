// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing parameters used by the server.
	Auth Auth `envPrefix:"AUTH_"`

	// Account holds the credentials the client logs in with when no stored
	// session can be restored.
	Account Account `envPrefix:"ACCOUNT_"`

	// Storage holds configuration for the client token store and the server
	// analytics cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, timeout and rate-limit settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's outbound API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background poller settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command holds the positional arguments left after flag parsing,
	// e.g. ["export", "12"] for the client.
	Command []string
}

// Auth holds server-side token parameters.
type Auth struct {
	// TokenSignKey is the HMAC key used to sign access tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued access tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of an access token (e.g. "15m").
	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a refresh token (e.g. "720h").
	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`
}

// Account holds client login credentials.
type Account struct {
	// Email is the login identifier.
	// Env: ACCOUNT_EMAIL
	Email string `env:"EMAIL"`

	// Password is the account password.
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the client SQLite token store settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the server Redis analytics cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the client token store settings.
type DB struct {
	// DSN is the SQLite file the client persists its session to. Empty keeps
	// the session in memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cache holds the Redis connection settings of the analytics cache.
type Cache struct {
	// RedisAddress is "host:port" of the Redis server. Empty disables caching.
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// TTL bounds how long cached analytics are served.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds inbound transport settings of the development server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of requests per second accepted by
	// the server. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the maximum burst above RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Adapter holds the client's outbound API settings.
type Adapter struct {
	// HTTPAddress is the base URL of the training API including its path
	// prefix (e.g. "http://localhost:8080/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshTimeout bounds the token refresh call; on expiry every queued
	// request fails.
	// Env: ADAPTER_REFRESH_TIMEOUT
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// PollInterval is how often the dashboard poller reloads the dashboard.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources, reading flags from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
