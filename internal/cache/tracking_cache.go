package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katatrina/sellerops-BE/internal/delivery"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// TrackingCache keeps recent carrier poll results so bursts of manual syncs
// do not hit the carrier for the same waybill again.
type TrackingCache interface {
	Get(ctx context.Context, carrier, awb string) (*delivery.TrackingResult, error)
	Set(ctx context.Context, result *delivery.TrackingResult, ttl time.Duration) error
}

type RedisTrackingCache struct {
	redis  *redis.Client
	prefix string
}

func NewRedisTrackingCache(redisClient *redis.Client) *RedisTrackingCache {
	return &RedisTrackingCache{
		redis:  redisClient,
		prefix: "tracking",
	}
}

// TrackingKey builds the Redis key, e.g. tracking:delhivery:1234567890123.
func TrackingKey(prefix, carrier, awb string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, delivery.CarrierKey(carrier), awb)
}

func (c *RedisTrackingCache) Get(ctx context.Context, carrier, awb string) (*delivery.TrackingResult, error) {
	data, err := c.redis.Get(ctx, TrackingKey(c.prefix, carrier, awb)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read tracking cache: %w", err)
	}

	var result delivery.TrackingResult
	if err = json.Unmarshal(data, &result); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, ErrCacheMiss
	}

	return &result, nil
}

func (c *RedisTrackingCache) Set(ctx context.Context, result *delivery.TrackingResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking result: %w", err)
	}

	err = c.redis.Set(ctx, TrackingKey(c.prefix, result.Carrier, result.AWB), data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to write tracking cache: %w", err)
	}

	return nil
}
