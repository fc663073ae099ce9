package db

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const (
	CategoryKeyPrefix = "econnews:category:"
	CategoryTTL       = 30 * 24 * time.Hour
)

func ConnectRedis(ctx context.Context, redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// CategoryCache remembers the label assigned to an article text so a re-run does not
// pay for the same classification twice.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client) *CategoryCache {
	return &CategoryCache{client: client, ttl: CategoryTTL}
}

// Get returns ("", false, nil) on a miss.
func (c *CategoryCache) Get(ctx context.Context, title, description string) (string, bool, error) {
	category, err := c.client.Get(ctx, categoryKey(title, description)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return category, true, nil
}

func (c *CategoryCache) Set(ctx context.Context, title, description, category string) error {
	return c.client.Set(ctx, categoryKey(title, description), category, c.ttl).Err()
}

func categoryKey(title, description string) string {
	sum := sha256.Sum256([]byte(title + "\x00" + description))
	return fmt.Sprintf("%s%x", CategoryKeyPrefix, sum[:16])
}
