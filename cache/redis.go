package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultKeyPrefix namespaces arlatin renderings inside a shared Redis
// instance.
const defaultKeyPrefix = "arlatin:"

// dialTimeout bounds the connectivity check in NewRedisCache.
const dialTimeout = 5 * time.Second

// RedisCache stores renderings in Redis, letting multiple processes
// share one warmed transliteration memo. Every key is namespaced with
// the configured prefix; backend errors on reads surface as misses so
// a flaky Redis degrades to recomputation, never to wrong output.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// RedisConfig configures NewRedisCache.
type RedisConfig struct {
	URL       string // Connection URL, e.g. "redis://localhost:6379"
	TTL       int    // Entry lifetime in seconds, 0 or less for no expiry
	KeyPrefix string // Key namespace, defaults to "arlatin:"
}

// NewRedisCache connects to Redis at cfg.URL and verifies the connection
// with a ping before returning.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisCacheFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisCacheFromClient wraps an existing client, e.g. one shared with
// the rest of an application or a redismock client in tests.
func NewRedisCacheFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *RedisCache {
	c := &RedisCache{client: client, prefix: keyPrefix}
	if c.prefix == "" {
		c.prefix = defaultKeyPrefix
	}
	if ttlSeconds > 0 {
		c.ttl = time.Duration(ttlSeconds) * time.Second
	}
	return c
}

// Get returns the rendering stored under key. Absent keys and backend
// errors both read as misses.
func (c *RedisCache) Get(key string) (string, bool) {
	val, err := c.client.Get(context.Background(), c.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a rendering under key with the configured expiry.
func (c *RedisCache) Set(key string, value string) error {
	return c.client.Set(context.Background(), c.prefix+key, value, c.ttl).Err()
}

// Ping checks the connection.
func (c *RedisCache) Ping() error {
	return c.client.Ping(context.Background()).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Verify RedisCache implements Cache
var _ Cache = (*RedisCache)(nil)
