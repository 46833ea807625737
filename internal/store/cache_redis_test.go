package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisAnalyticsCache_SetGet(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisAnalyticsCache(client, logger.Nop())
	ctx := context.Background()

	_, err := cache.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrCacheMiss)

	duration := 42.5
	analytics := models.SessionAnalytics{
		SessionID:      1,
		TotalPunches:   12,
		AverageSpeed:   8.25,
		PunchTypes:     map[string]int{models.PunchJab: 10, models.PunchHook: 2},
		DurationMin:    &duration,
		Classification: "Advanced",
	}
	require.NoError(t, cache.Set(ctx, analytics, time.Minute))

	got, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, analytics, got)
	assert.Equal(t, time.Minute, mr.TTL(analyticsKey(1)))

	mr.FastForward(2 * time.Minute)
	_, err = cache.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAnalyticsCache_Invalidate(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewRedisAnalyticsCache(client, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, models.SessionAnalytics{SessionID: 3}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx, 3))

	_, err := cache.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAnalyticsCache_CorruptEntryIsMiss(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisAnalyticsCache(client, logger.Nop())

	require.NoError(t, mr.Set(analyticsKey(9), "{not json"))

	_, err := cache.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.False(t, mr.Exists(analyticsKey(9)))
}

func TestRedisAnalyticsCache_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisAnalyticsCache(client, logger.Nop())
	mr.Close()

	_, err := cache.Get(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestNopAnalyticsCache(t *testing.T) {
	cache := NewNopAnalyticsCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, models.SessionAnalytics{SessionID: 1}, time.Minute))
	_, err := cache.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, cache.Invalidate(ctx, 1))
}

func TestNewStorages(t *testing.T) {
	ctx := context.Background()

	t.Run("without redis", func(t *testing.T) {
		s := NewStorages(ctx, config.ServerCache{}, logger.Nop())
		assert.IsType(t, nopAnalyticsCache{}, s.AnalyticsCache)
		assert.NoError(t, s.Close())
	})

	t.Run("with redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		s := NewStorages(ctx, config.ServerCache{RedisAddress: mr.Addr(), TTL: time.Minute}, logger.Nop())
		assert.IsType(t, &redisAnalyticsCache{}, s.AnalyticsCache)
		assert.NoError(t, s.Close())
	})

	t.Run("unreachable redis falls back", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		s := NewStorages(ctx, config.ServerCache{RedisAddress: addr}, logger.Nop())
		assert.IsType(t, nopAnalyticsCache{}, s.AnalyticsCache)
	})

	t.Run("repositories share one database", func(t *testing.T) {
		s := NewStorages(ctx, config.ServerCache{}, logger.Nop())
		user, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@b.c"})
		require.NoError(t, err)
		session, err := s.TrainingRepository.CreateSession(ctx, models.TrainingSession{UserID: user.UserID})
		require.NoError(t, err)
		assert.EqualValues(t, user.UserID, session.UserID)
	})
}
