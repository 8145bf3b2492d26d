package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Cache stored in Redis. Values are encoded with a Marshaler,
// JSON by default.
type Redis[V any] struct {
	client    redis.UniversalClient
	opts      *redisOptions
	marshaler Marshaler[V]
}

// NewRedis creates a Redis cache over a client from pkg/redis.Open.
// A nil Marshaler selects JSON.
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	if m == nil {
		m = jsonMarshaler[V]{}
	}
	return &Redis[V]{client: client, opts: o, marshaler: m}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	v, found, err := r.get(ctx, r.client, r.key(key))
	if err != nil {
		return v, err
	}
	if !found {
		return v, ErrNotFound
	}
	return v, nil
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, r.ttl(ttl)).Err()
}

func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Update applies fn inside a WATCH/MULTI transaction and retries when
// another client modifies the key first.
func (r *Redis[V]) Update(ctx context.Context, key string, ttl time.Duration, fn UpdateFunc[V]) (V, error) {
	k := r.key(key)
	var result V

	txf := func(tx *redis.Tx) error {
		cur, found, err := r.get(ctx, tx, k)
		if err != nil {
			return err
		}
		next, err := fn(cur, found)
		if err != nil {
			result = cur
			return err
		}
		data, err := r.marshaler.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, r.ttl(ttl))
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for range r.opts.maxRetries {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return result, err
	}
	var zero V
	return zero, ErrConflict
}

// Close is a no-op; the client is shut down with pkg/redis.Shutdown.
func (r *Redis[V]) Close() error {
	return nil
}

func (r *Redis[V]) get(ctx context.Context, c getter, key string) (V, bool, error) {
	var zero V
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v, err := r.marshaler.Unmarshal(data)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// ttl maps the Cache semantics onto Redis, where 0 means no expiry.
func (r *Redis[V]) ttl(ttl time.Duration) time.Duration {
	return max(resolveTTL(ttl, r.opts.defaultTTL), 0)
}

func (r *Redis[V]) key(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

// getter is satisfied by both the client and a WATCH transaction.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

var _ Cache[any] = (*Redis[any])(nil)
