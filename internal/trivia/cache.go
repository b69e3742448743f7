package trivia

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL  = 5 * time.Minute
	categoryCacheKey = "trivia:categories"
)

// Cache keeps the category list in Redis. Categories have no write path, so entries
// only expire by TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context) ([]Category, error) {
	data, err := c.client.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Cache) Set(ctx context.Context, categories []Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoryCacheKey, data, c.ttl).Err()
}
