package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin wrapper over Redis used for best-effort lookups and event
// publishing. A nil *Cache is a no-op so the service runs without Redis.
type Cache struct {
	conn *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{conn: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Cache) Set(ctx context.Context, key, value string) error {
	if c == nil {
		return nil
	}
	return c.conn.Set(ctx, key, value, 0).Err()
}

func (c *Cache) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.conn.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c == nil {
		return "", redis.Nil
	}
	return c.conn.Get(ctx, key).Result()
}

func (c *Cache) Publish(ctx context.Context, channel string, payload []byte) error {
	if c == nil {
		return nil
	}
	return c.conn.Publish(ctx, channel, payload).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.conn.Close()
}
