package cache

import "time"

// RedisOption configures a Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
	maxRetries int
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{defaultTTL: time.Hour, maxRetries: 5}
}

// WithRedisDefaultTTL sets the TTL used when Set is called with zero. Default 1h.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) { o.defaultTTL = d }
}

// WithPrefix namespaces keys as "{prefix}:{key}".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) { o.prefix = prefix }
}

// WithUpdateRetries sets how many optimistic transactions Update attempts
// before returning ErrConflict. Default 5.
func WithUpdateRetries(n int) RedisOption {
	return func(o *redisOptions) { o.maxRetries = max(n, 1) }
}
