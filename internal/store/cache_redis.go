package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// ErrRedisUnavailable is returned when the Redis server cannot be reached at
// start-up.
var ErrRedisUnavailable = errors.New("redis unavailable")

const analyticsKeyPrefix = "punch-tracker:analytics:session:"

type redisAnalyticsCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to the Redis server at addr and pings it.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return client, nil
}

// NewRedisAnalyticsCache returns an [AnalyticsCache] storing analytics as
// JSON strings.
func NewRedisAnalyticsCache(client *redis.Client, log *logger.Logger) AnalyticsCache {
	return &redisAnalyticsCache{client: client, logger: log}
}

func analyticsKey(sessionID int64) string {
	return analyticsKeyPrefix + strconv.FormatInt(sessionID, 10)
}

func (c *redisAnalyticsCache) Get(ctx context.Context, sessionID int64) (models.SessionAnalytics, error) {
	data, err := c.client.Get(ctx, analyticsKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.SessionAnalytics{}, ErrCacheMiss
	}
	if err != nil {
		return models.SessionAnalytics{}, fmt.Errorf("redis get: %w", err)
	}

	var analytics models.SessionAnalytics
	if err = json.Unmarshal(data, &analytics); err != nil {
		// a corrupt entry is as good as none
		logger.FromContext(ctx).Warn().Err(err).Int64("session_id", sessionID).Msg("dropping corrupt analytics cache entry")
		_ = c.client.Del(ctx, analyticsKey(sessionID)).Err()
		return models.SessionAnalytics{}, ErrCacheMiss
	}

	return analytics, nil
}

func (c *redisAnalyticsCache) Set(ctx context.Context, analytics models.SessionAnalytics, ttl time.Duration) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("encode analytics: %w", err)
	}

	if err = c.client.Set(ctx, analyticsKey(analytics.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *redisAnalyticsCache) Invalidate(ctx context.Context, sessionID int64) error {
	if err := c.client.Del(ctx, analyticsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// nopAnalyticsCache is used when no Redis address is configured.
type nopAnalyticsCache struct{}

// NewNopAnalyticsCache returns an [AnalyticsCache] that never stores
// anything.
func NewNopAnalyticsCache() AnalyticsCache {
	return nopAnalyticsCache{}
}

func (nopAnalyticsCache) Get(context.Context, int64) (models.SessionAnalytics, error) {
	return models.SessionAnalytics{}, ErrCacheMiss
}

func (nopAnalyticsCache) Set(context.Context, models.SessionAnalytics, time.Duration) error {
	return nil
}

func (nopAnalyticsCache) Invalidate(context.Context, int64) error {
	return nil
}
