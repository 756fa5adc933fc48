package cache

import (
	"context"
	"sync"
	"time"
)

type memoryCacher struct {
	mu   sync.RWMutex
	data map[string]cacheValue
}

type cacheValue struct {
	v              any
	registeredTime time.Time
	ttl            time.Duration
}

func NewMemoryCacher() Cacher {
	return &memoryCacher{
		data: map[string]cacheValue{},
	}
}

func (m *memoryCacher) Remember(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = cacheValue{
		v:              value,
		registeredTime: time.Now(),
		ttl:            ttl,
	}

	return nil
}

func (m *memoryCacher) Get(ctx context.Context, key string) (any, error) {
	m.mu.RLock()
	value, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoEntry
	}

	if value.registeredTime.Add(value.ttl).Before(time.Now()) {
		m.mu.Lock()
		// a Remember may have refreshed the entry after the read lock
		// was released, only evict the value that was seen expired
		if current, ok := m.data[key]; ok && current.registeredTime.Equal(value.registeredTime) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return nil, ErrEntryExpired
	}

	return value.v, nil
}

func (m *memoryCacher) Forget(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}
