package config

import "time"

// Default values applied before any other source.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultAdapterAddress       = "http://localhost:8080/api"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultRefreshTimeout       = 10 * time.Second
	DefaultPollInterval         = 30 * time.Second
	DefaultTokenIssuer          = "go-punch-tracker"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 30 * 24 * time.Hour
	DefaultCacheTTL             = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
		},
		Storage: Storage{
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			RefreshTimeout: DefaultRefreshTimeout,
		},
		Workers: Workers{
			PollInterval: DefaultPollInterval,
		},
	}
}
