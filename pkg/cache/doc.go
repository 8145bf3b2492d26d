// Package cache provides a generic expiring key-value Cache with in-memory
// and Redis backends.
//
// Memory keeps entries in process with TTL expiry and an optional LRU
// bound. Redis stores JSON (or a custom Marshaler) under an optional key
// prefix and is the choice when several processes share state.
//
//	c := cache.NewMemory[State](cache.WithDefaultTTL(time.Hour))
//	defer c.Close()
//
//	st, err := c.Update(ctx, "session-id", 0, func(cur State, found bool) (State, error) {
//		cur.Count++
//		return cur, nil
//	})
//
// Update is atomic per key: Memory holds its lock while fn runs, Redis uses
// an optimistic WATCH/MULTI transaction and retries on conflict.
package cache
