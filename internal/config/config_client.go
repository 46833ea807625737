package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the training API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RefreshTimeout bounds the single-flight token refresh call.
	RefreshTimeout time.Duration
}

// ClientDB contains local token store settings.
type ClientDB struct {
	// DSN is the SQLite file path; empty keeps the session in memory.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the dashboard is reloaded.
	PollInterval time.Duration
}

// ClientAccount holds the credentials used when no session can be restored.
type ClientAccount struct {
	Email    string
	Password string
}

// ClientConfig is the client-side view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Account ClientAccount

	// Command is the client sub-command with its arguments; empty runs the
	// dashboard.
	Command []string
}

// GetClientConfig builds and validates the client config from all sources.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RefreshTimeout: cfg.Adapter.RefreshTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{PollInterval: cfg.Workers.PollInterval},
		Account: ClientAccount{
			Email:    cfg.Account.Email,
			Password: cfg.Account.Password,
		},
		Command: cfg.Command,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
