package store

import (
	"context"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// refreshTokenRepository is the in-memory implementation of
// [RefreshTokenRepository].
type refreshTokenRepository struct {
	db     *memoryDB
	logger *logger.Logger
}

func newRefreshTokenRepository(db *memoryDB, log *logger.Logger) RefreshTokenRepository {
	log.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{db: db, logger: log}
}

func (r *refreshTokenRepository) SaveRefreshToken(_ context.Context, token models.RefreshToken) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.refreshTokens[token.TokenHash] = token
	return nil
}

func (r *refreshTokenRepository) RotateRefreshToken(ctx context.Context, oldHash string, next models.RefreshToken) (models.RefreshToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	old, ok := r.db.refreshTokens[oldHash]
	if !ok || !old.Usable(now) {
		logger.FromContext(ctx).Debug().Str("func", "*refreshTokenRepository.RotateRefreshToken").
			Bool("known", ok).Msg("refresh token rejected")
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}

	old.RevokedAt = &now
	r.db.refreshTokens[oldHash] = old

	next.UserID = old.UserID
	r.db.refreshTokens[next.TokenHash] = next

	return old, nil
}

func (r *refreshTokenRepository) RevokeRefreshToken(_ context.Context, hash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	token, ok := r.db.refreshTokens[hash]
	if !ok {
		return ErrRefreshTokenNotFound
	}
	if token.RevokedAt == nil {
		now := r.db.now()
		token.RevokedAt = &now
		r.db.refreshTokens[hash] = token
	}

	return nil
}
