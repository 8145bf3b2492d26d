package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	expiresAt time.Time // zero never expires
	value     V
	key       string
}

func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is a process-local cache with TTL expiry and optional LRU bound.
// A map gives O(1) lookup; a list keeps recency order, most recent in front.
type Memory[V any] struct {
	items map[string]*list.Element
	lru   *list.List
	opts  *memoryOptions
	done  chan struct{}
	now   func() time.Time

	mu     sync.Mutex
	closed bool
}

// NewMemory creates a Memory cache. Close it to stop the janitor.
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items: make(map[string]*list.Element),
		lru:   list.New(),
		opts:  o,
		done:  make(chan struct{}),
		now:   time.Now,
	}
	if o.cleanupInterval > 0 {
		go m.janitor()
	}
	return m
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.lookup(key)
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.store(key, value, ttl)
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
	return nil
}

// Update runs fn under the cache lock.
func (m *Memory[V]) Update(_ context.Context, key string, ttl time.Duration, fn UpdateFunc[V]) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		var zero V
		return zero, ErrClosed
	}

	cur, found := m.lookup(key)
	next, err := fn(cur, found)
	if err != nil {
		return cur, err
	}
	m.store(key, next, ttl)
	return next, nil
}

// Len returns the number of entries, including expired ones not yet purged.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. Subsequent writes return ErrClosed. Idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}

// lookup returns a live value and marks it recently used. Caller holds mu.
func (m *Memory[V]) lookup(key string) (V, bool) {
	var zero V
	elem, ok := m.items[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[V])
	if e.expired(m.now()) {
		m.remove(elem)
		return zero, false
	}
	m.lru.MoveToFront(elem)
	return e.value, true
}

// store inserts or replaces key. Caller holds mu.
func (m *Memory[V]) store(key string, value V, ttl time.Duration) {
	var expiresAt time.Time
	if ttl = resolveTTL(ttl, m.opts.defaultTTL); ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		m.lru.MoveToFront(elem)
		return
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.lru.Back(); oldest != nil {
			m.remove(oldest)
		}
	}
	m.items[key] = m.lru.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

func (m *Memory[V]) remove(elem *list.Element) {
	m.lru.Remove(elem)
	delete(m.items, elem.Value.(*entry[V]).key)
}

func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.purgeExpired()
		}
	}
}

func (m *Memory[V]) purgeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for elem := m.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[V]).expired(now) {
			m.remove(elem)
		}
		elem = prev
	}
}

var _ Cache[any] = (*Memory[any])(nil)
