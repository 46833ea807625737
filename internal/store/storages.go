package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
)

// Storages groups the development server's repositories.
type Storages struct {
	UserRepository         UserRepository
	TrainingRepository     TrainingRepository
	CoachRepository        CoachRepository
	RefreshTokenRepository RefreshTokenRepository
	AnalyticsCache         AnalyticsCache

	redis *redis.Client
}

// NewStorages builds the in-memory repositories and the analytics cache.
// The cache is best-effort: when Redis is not configured or cannot be
// reached the server runs without it.
func NewStorages(ctx context.Context, cfg config.ServerCache, log *logger.Logger) *Storages {
	db := newMemoryDB()
	s := &Storages{
		UserRepository:         newUserRepository(db, log),
		TrainingRepository:     newTrainingRepository(db, log),
		CoachRepository:        newCoachRepository(db, log),
		RefreshTokenRepository: newRefreshTokenRepository(db, log),
		AnalyticsCache:         NewNopAnalyticsCache(),
	}

	if cfg.RedisAddress == "" {
		log.Info().Msg("analytics cache disabled")
		return s
	}

	client, err := NewRedisClient(ctx, cfg.RedisAddress)
	if err != nil {
		log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("analytics cache unavailable, continuing without it")
		return s
	}

	log.Info().Str("address", cfg.RedisAddress).Msg("analytics cache connected")
	s.redis = client
	s.AnalyticsCache = NewRedisAnalyticsCache(client, log)

	return s
}

// Close releases the Redis connection, if any.
func (s *Storages) Close() error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Close()
}
