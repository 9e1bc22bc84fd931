// Package cache provides caching implementations for source interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
)

// CachingSeriesSource decorates a SeriesSource with Redis caching.
// Because the underlying source is generative, every miss would otherwise
// produce a brand new random walk; caching keeps the chart stable for a
// given (isin, days) within the TTL. The bond list is deliberately never
// cached: refresh-on-read is its documented contract.
type CachingSeriesSource struct {
	inner     usecase.SeriesSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingSeriesSource decorates a SeriesSource with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "history".
func NewCachingSeriesSource(rdb *redis.Client, ttl time.Duration, inner usecase.SeriesSource, namespace string) *CachingSeriesSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "history"
	}
	return &CachingSeriesSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Series retrieves a historical series, checking the cache first and
// falling back to the generator on a miss.
func (c *CachingSeriesSource) Series(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Series(ctx, isin, days)
	}

	key := c.cacheKey(isin, days)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.HistoricalPoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the generator
	out, err := c.inner.Series(ctx, isin, days)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingSeriesSource) cacheKey(isin string, days int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(isin), days)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
