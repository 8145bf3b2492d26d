package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Cache is a generic key-value store with expiring entries.
//
// TTL semantics for Set and Update:
//   - positive: the entry expires after the duration
//   - zero: the backend's default TTL
//   - negative: the entry never expires
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Update atomically replaces the value at key with the result of fn.
	// fn receives the current value and whether it exists. Returning an
	// error aborts the update and the error is returned unchanged.
	Update(ctx context.Context, key string, ttl time.Duration, fn UpdateFunc[V]) (V, error)

	Close() error
}

// UpdateFunc computes a new value from the current one.
type UpdateFunc[V any] func(current V, found bool) (V, error)

// Marshaler converts values for byte-oriented backends such as Redis.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// resolveTTL maps the zero TTL to def.
func resolveTTL(ttl, def time.Duration) time.Duration {
	if ttl == 0 {
		return def
	}
	return ttl
}
