package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// sqliteTokenStore keeps the client session in the single-row session_tokens
// table.
type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteTokenStore returns a [TokenStore] over an already migrated db.
func NewSQLiteTokenStore(db *DB, log *logger.Logger) TokenStore {
	return &sqliteTokenStore{db: db, logger: log, now: time.Now}
}

func (s *sqliteTokenStore) Load(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadTokenQuery()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		token     models.Token
		expiresAt sql.NullTime
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token.AccessToken, &token.RefreshToken, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Token{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteTokenStore.Load").Msg("error loading session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		token.ExpiresAt = expiresAt.Time
	}

	return token, nil
}

func (s *sqliteTokenStore) Save(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveTokenQuery(token, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteTokenStore.Save").Msg("error saving session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearTokenQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteTokenStore.Clear").Msg("error clearing session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
