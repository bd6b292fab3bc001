package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const regionKeyPrefix = "pricing:region:"

// RegionRedisCache keeps each session's resolved region as JSON in Redis,
// so every API replica serves the same region for a session.
type RegionRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IRegionCache = (*RegionRedisCache)(nil)

// NewRegionRedisCache builds the cache. A ttl <= 0 keeps entries until deleted.
func NewRegionRedisCache(rdb *redis.Client, ttl time.Duration) *RegionRedisCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RegionRedisCache{rdb: rdb, ttl: ttl}
}

func (c *RegionRedisCache) Get(ctx context.Context, sessionID string) (pricing.Region, bool, error) {
	data, err := c.rdb.Get(ctx, regionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.Region{}, false, nil
		}
		return pricing.Region{}, false, err
	}
	var r pricing.Region
	if err := json.Unmarshal(data, &r); err != nil {
		return pricing.Region{}, false, err
	}
	return r, true, nil
}

func (c *RegionRedisCache) Set(ctx context.Context, sessionID string, r pricing.Region) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, regionKeyPrefix+sessionID, data, c.ttl).Err()
}

func (c *RegionRedisCache) Delete(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, regionKeyPrefix+sessionID).Err()
}
