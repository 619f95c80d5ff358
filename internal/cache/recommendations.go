// Package cache holds the Redis-backed caches. Everything here is best
// effort: callers fall back to Postgres when Redis is unavailable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"techvault/internal/http-api/dto"

	"github.com/redis/go-redis/v9"
)

const (
	recommendationsKey = "recommendations:candidates"
	recommendationsTTL = 5 * time.Minute
)

// RecommendationCache stores the assembled recommendation candidate list.
// The entry is user-agnostic (personalization is applied after retrieval)
// and is invalidated whenever a rating lands or a resource is uploaded.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(redisURL string) (*RecommendationCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RecommendationCache{client: client}, nil
}

// Get returns the cached candidate list. The second return is false on a
// miss or any Redis/decoding error. The slice is freshly decoded, so the
// caller may mutate it.
func (c *RecommendationCache) Get(ctx context.Context) ([]dto.ResourceResponse, bool) {
	raw, err := c.client.Get(ctx, recommendationsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []dto.ResourceResponse
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *RecommendationCache) Set(ctx context.Context, items []dto.ResourceResponse) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recommendationsKey, raw, recommendationsTTL).Err()
}

func (c *RecommendationCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, recommendationsKey).Err()
}

// Ping reports Redis health for the healthz endpoint.
func (c *RecommendationCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RecommendationCache) Close() error {
	return c.client.Close()
}
