package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheResolution stores a page path -> sidebar key resolution in cache
func (s *Store) CacheResolution(ctx context.Context, digest, pagePath, sidebarKey string, ttl time.Duration) error {
	key := CacheKey(digest, pagePath)
	if err := s.client.Set(ctx, key, sidebarKey, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache resolution: %w", err)
	}
	return nil
}

// GetCachedResolution retrieves a cached resolution; "" means a cache miss.
func (s *Store) GetCachedResolution(ctx context.Context, digest, pagePath string) (string, error) {
	key := CacheKey(digest, pagePath)
	sidebarKey, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // Cache miss
		}
		return "", fmt.Errorf("failed to get cached resolution: %w", err)
	}
	return sidebarKey, nil
}

// FlushCache removes all cached resolutions and returns how many were removed.
func (s *Store) FlushCache(ctx context.Context) (int, error) {
	removed := 0
	iter := s.client.Scan(ctx, 0, KeyPrefixCache+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("failed to delete cache key: %w", err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to flush cache: %w", err)
	}
	return removed, nil
}
