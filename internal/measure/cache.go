package measure

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// SessionCache keeps heights for the lifetime of one render session.
type SessionCache struct {
	mu      sync.Mutex
	heights map[string]float64
}

// NewSessionCache creates an empty session cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{heights: make(map[string]float64)}
}

func (c *SessionCache) Get(_ context.Context, keys []string) (map[string]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]float64, len(keys))
	for _, k := range keys {
		if h, ok := c.heights[k]; ok {
			out[k] = h
		}
	}
	return out, nil
}

func (c *SessionCache) Put(_ context.Context, heights map[string]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, h := range heights {
		c.heights[k] = h
	}
	return nil
}

// Len returns the number of cached heights.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.heights)
}

// RedisCache shares heights between processes. Variants are immutable, so
// a height stays valid for as long as its key exists.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to redisURL.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	c := redis.NewClient(opt)
	if err := c.Ping(context.Background()).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisCache{client: c, ttl: ttl}, nil
}

func (c *RedisCache) Close() error { return c.client.Close() }

func (c *RedisCache) key(k string) string { return "worksheet:height:" + k }

func (c *RedisCache) Get(ctx context.Context, keys []string) (map[string]float64, error) {
	if len(keys) == 0 {
		return map[string]float64{}, nil
	}
	rkeys := make([]string, len(keys))
	for i, k := range keys {
		rkeys[i] = c.key(k)
	}
	vals, err := c.client.MGet(ctx, rkeys...).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(keys))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if h, err := strconv.ParseFloat(s, 64); err == nil {
			out[keys[i]] = h
		}
	}
	return out, nil
}

func (c *RedisCache) Put(ctx context.Context, heights map[string]float64) error {
	if len(heights) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for k, h := range heights {
		pipe.Set(ctx, c.key(k), strconv.FormatFloat(h, 'f', -1, 64), c.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
