package cache

import "errors"

var (
	ErrNotFound  = errors.New("cache: entry not found")
	ErrClosed    = errors.New("cache: closed")
	ErrMarshal   = errors.New("cache: failed to marshal value")
	ErrUnmarshal = errors.New("cache: failed to unmarshal value")

	// ErrConflict is returned by Redis.Update when the key kept changing
	// under concurrent writers for every retry.
	ErrConflict = errors.New("cache: concurrent update conflict")
)
