package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
)

// ClientStorages groups the client-side storage.
type ClientStorages struct {
	// TokenStore persists the session tokens.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer. With an empty
// cfg.DB.DSN the session lives in memory only. Otherwise it:
//  1. Opens the SQLite file at cfg.DB.DSN, creating it if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Returns a [ClientStorages] wired to the SQLite [TokenStore].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no token store DSN configured, session is kept in memory")
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil
	}

	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewSQLiteTokenStore(db, log),
		db:         db,
	}, nil
}

// Close releases the database handle, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
