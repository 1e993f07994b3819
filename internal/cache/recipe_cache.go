package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "recipeshare/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "recipe:list"

// RecipeCache caches the full recipe listing in Redis. There is a single
// key: the listing is global, not per user.
type RecipeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRecipeCache returns a new RecipeCache.
func NewRecipeCache(rdb *redis.Client, ttl time.Duration) *RecipeCache {
	return &RecipeCache{rdb: rdb, ttl: ttl}
}

// GetList returns cached list or nil if miss.
func (c *RecipeCache) GetList(ctx context.Context) ([]dom.Recipe, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Recipe
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *RecipeCache) SetList(ctx context.Context, list []dom.Recipe) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate removes the cached listing (called on every write).
func (c *RecipeCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
