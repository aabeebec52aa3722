// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"winecellar_backend/internal/feature/labelanalysis/domain/entity"
	"winecellar_backend/internal/feature/labelanalysis/usecase"
)

// CachingRegionCatalog decorates a RegionCatalog with Redis caching.
// The region catalog is small and changes rarely, so a short TTL read-through
// cache saves a DB round trip on every label analysis without staleness issues.
type CachingRegionCatalog struct {
	inner     usecase.RegionCatalog
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RegionCatalog = (*CachingRegionCatalog)(nil)

// NewCachingRegionCatalog decorates a RegionCatalog with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "regions".
func NewCachingRegionCatalog(rdb *redis.Client, ttl time.Duration, inner usecase.RegionCatalog, namespace string) *CachingRegionCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "regions"
	}
	return &CachingRegionCatalog{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListCandidates retrieves candidates, checking cache first then falling back
// to the underlying catalog. Candidate order is part of the cached value, so a
// hit reproduces the same country-first ordering the adapter returns.
func (c *CachingRegionCatalog) ListCandidates(ctx context.Context, countryHint string) ([]entity.RegionCandidate, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListCandidates(ctx, countryHint)
	}

	key := c.cacheKey(countryHint)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.RegionCandidate
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the catalog
	out, err := c.inner.ListCandidates(ctx, countryHint)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops every cached candidate list in the namespace. Called after
// catalog writes so AnalyzeLabel never matches against regions that no longer
// exist. A no-op without Redis.
func (c *CachingRegionCatalog) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, fmt.Sprintf("%s:candidates:*", c.namespace))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingRegionCatalog) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

func (c *CachingRegionCatalog) cacheKey(countryHint string) string {
	if countryHint == "" {
		countryHint = "all"
	}
	return fmt.Sprintf("%s:candidates:%s", c.namespace, countryHint)
}
