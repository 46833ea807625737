package config

import (
	"fmt"
	"time"
)

// ServerAuth holds token issuing parameters.
type ServerAuth struct {
	TokenSignKey         string
	TokenIssuer          string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
}

// ServerTransport holds listen and throttling settings.
type ServerTransport struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

// ServerCache holds analytics cache settings.
type ServerCache struct {
	RedisAddress string
	TTL          time.Duration
}

// ServerConfig is the development server's view of [StructuredConfig].
type ServerConfig struct {
	Auth   ServerAuth
	Server ServerTransport
	Cache  ServerCache
}

// GetServerConfig builds and validates the server config from all sources.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Auth: ServerAuth{
			TokenSignKey:         cfg.Auth.TokenSignKey,
			TokenIssuer:          cfg.Auth.TokenIssuer,
			AccessTokenDuration:  cfg.Auth.AccessTokenDuration,
			RefreshTokenDuration: cfg.Auth.RefreshTokenDuration,
		},
		Server: ServerTransport{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.Server.RateLimit,
			RateBurst:      cfg.Server.RateBurst,
		},
		Cache: ServerCache{
			RedisAddress: cfg.Storage.Cache.RedisAddress,
			TTL:          cfg.Storage.Cache.TTL,
		},
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}
