package cache

import (
	"context"
	"time"
)

type noopCacher struct{}

// NewNoopCacher never stores anything, every Get is a miss.
func NewNoopCacher() Cacher {
	return noopCacher{}
}

func (noopCacher) Remember(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (noopCacher) Get(ctx context.Context, key string) (any, error) {
	return nil, ErrNoEntry
}

func (noopCacher) Forget(ctx context.Context, key string) error {
	return nil
}
